// Package config loads application settings from defaults, an optional
// YAML file and ECOAMAZONIA_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/llm"
)

// Config is the full application configuration.
type Config struct {
	// Language is the content language used until a signed-in player
	// picks their own.
	Language i18n.Language `yaml:"language"`

	// SettleDelay is how long a journey shows its loading view before
	// settling on story, game or final view.
	SettleDelay time.Duration `yaml:"settleDelay"`

	// ProfileApp names the gdata application that stores profiles.
	ProfileApp string `yaml:"profileApp"`

	// Catalog optionally replaces the built-in guardian catalog.
	Catalog string `yaml:"catalog"`

	LLM llm.Config `yaml:"llm"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:    i18n.Default,
		SettleDelay: 300 * time.Millisecond,
		ProfileApp:  "ecoamazonia",
		LLM:         llm.DefaultConfig(),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/ecoamazonia/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(dir, "ecoamazonia", "config.yaml")
}

// Load builds a Config. An empty path reads DefaultPath when it exists;
// an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ECOAMAZONIA_LANGUAGE"); v != "" {
		cfg.Language = i18n.Language(v)
	}
	if v := os.Getenv("ECOAMAZONIA_SETTLE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ECOAMAZONIA_SETTLE_DELAY: %w", err)
		}
		cfg.SettleDelay = d
	}
	if v := os.Getenv("ECOAMAZONIA_CATALOG"); v != "" {
		cfg.Catalog = v
	}
	llm.ApplyEnv(&cfg.LLM)
	return nil
}

// Validate checks field ranges and normalizes the language code.
func (c *Config) Validate() error {
	lang, err := i18n.ParseLanguage(string(c.Language))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Language = lang
	if c.SettleDelay < 0 {
		return fmt.Errorf("config: settleDelay must not be negative")
	}
	if c.ProfileApp == "" {
		return fmt.Errorf("config: profileApp must not be empty")
	}
	return nil
}

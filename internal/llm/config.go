package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration. API keys are only read from
// the environment and are never written to the config file.
type Config struct {
	// Provider selects which LLM provider to use. Empty means no provider
	// is configured and quiz content comes from the built-in question set.
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds a single LLM request including retries.
	Timeout time.Duration `yaml:"timeout"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"` // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`   // Default: "gpt-4o-mini"
	BaseURL string `yaml:"baseURL"` // Optional. Any OpenAI-compatible API.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"` // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`   // Default: "google/gemini-2.5-flash"
	BaseURL string `yaml:"baseURL"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"maxAttempts"`
	InitialWait time.Duration `yaml:"initialWait"`
	MaxWait     time.Duration `yaml:"maxWait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults and no provider.
func DefaultConfig() Config {
	return Config{
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables over defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg with any ECOAMAZONIA_* variables that are set.
func ApplyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "ECOAMAZONIA_LLM_PROVIDER")

	set(&cfg.Gemini.APIKey, "ECOAMAZONIA_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "ECOAMAZONIA_GEMINI_MODEL")

	set(&cfg.Anthropic.APIKey, "ECOAMAZONIA_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "ECOAMAZONIA_ANTHROPIC_MODEL")

	set(&cfg.OpenAI.APIKey, "ECOAMAZONIA_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "ECOAMAZONIA_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "ECOAMAZONIA_OPENAI_BASE_URL")

	set(&cfg.OpenRouter.APIKey, "ECOAMAZONIA_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "ECOAMAZONIA_OPENROUTER_MODEL")

	if v := os.Getenv("ECOAMAZONIA_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
}

// Discover fills in a provider from the vendors' standard API key variables
// (Gemini, OpenAI, Anthropic, OpenRouter, in that order) when cfg names
// none. It reports whether a provider is selected afterwards.
func Discover(cfg *Config) bool {
	if cfg.Provider != "" {
		return true
	}

	candidates := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, c := range candidates {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			if *c.key == "" {
				*c.key = k
			}
			return true
		}
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ECOAMAZONIA_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ECOAMAZONIA_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("ECOAMAZONIA_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("ECOAMAZONIA_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
		// No API key needed.
	case "":
		return fmt.Errorf("no LLM provider configured")
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/llm"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"ECOAMAZONIA_LANGUAGE", "ECOAMAZONIA_SETTLE_DELAY", "ECOAMAZONIA_CATALOG", "ECOAMAZONIA_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: EN
settleDelay: 1s
llm:
  provider: gemini
  gemini:
    model: gemini-pro
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, i18n.English, cfg.Language)
	assert.Equal(t, time.Second, cfg.SettleDelay)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-pro", cfg.LLM.Gemini.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model, "unset keys keep defaults")

	t.Setenv("ECOAMAZONIA_LANGUAGE", "es")
	t.Setenv("ECOAMAZONIA_SETTLE_DELAY", "0s")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, i18n.Spanish, cfg.Language)
	assert.Zero(t, cfg.SettleDelay)
}

func TestLoadDefaultPath(t *testing.T) {
	isolate(t)
	path := DefaultPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("profileApp: ecoamazonia-test\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ecoamazonia-test", cfg.ProfileApp)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("language: [pt\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	lang := filepath.Join(dir, "lang.yaml")
	require.NoError(t, os.WriteFile(lang, []byte("language: fr\n"), 0o644))
	_, err = Load(lang)
	assert.Error(t, err)

	t.Setenv("ECOAMAZONIA_SETTLE_DELAY", "soon")
	_, err = Load("")
	assert.Error(t, err)
}

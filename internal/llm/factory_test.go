package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ecoamazonia/guardioes/internal/store"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ECOAMAZONIA_LLM_PROVIDER", "ECOAMAZONIA_GEMINI_API_KEY", "ECOAMAZONIA_GEMINI_MODEL",
		"ECOAMAZONIA_ANTHROPIC_API_KEY", "ECOAMAZONIA_OPENAI_API_KEY", "ECOAMAZONIA_OPENROUTER_API_KEY",
		"ECOAMAZONIA_LLM_TIMEOUT",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestApplyEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ECOAMAZONIA_LLM_PROVIDER", "gemini")
	t.Setenv("ECOAMAZONIA_GEMINI_API_KEY", "g-key")
	t.Setenv("ECOAMAZONIA_GEMINI_MODEL", "gemini-pro")
	t.Setenv("ECOAMAZONIA_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-pro", cfg.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model, "unset variables keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestDiscover(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		clearProviderEnv(t)
		cfg := DefaultConfig()
		assert.False(t, Discover(&cfg))
		assert.Empty(t, cfg.Provider)
	})

	t.Run("gemini preferred over openai", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("OPENAI_API_KEY", "o-key")
		t.Setenv("GEMINI_API_KEY", "g-key")
		cfg := DefaultConfig()
		require.True(t, Discover(&cfg))
		assert.Equal(t, ProviderGemini, cfg.Provider)
		assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	})

	t.Run("explicit provider wins", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("GEMINI_API_KEY", "g-key")
		cfg := DefaultConfig()
		cfg.Provider = ProviderMock
		require.True(t, Discover(&cfg))
		assert.Equal(t, ProviderMock, cfg.Provider)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, true},
		{"unknown", Config{Provider: "cohere"}, true},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock", Config{Provider: ProviderMock}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProviderFromConfig(t *testing.T) {
	clearProviderEnv(t)
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	_, err := NewProviderFromConfig(ctx, DefaultConfig(), nil, logger)
	assert.ErrorIs(t, err, ErrNotConfigured)

	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProviderFromConfig(ctx, cfg, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or-test"
	p, err = NewProviderFromConfig(ctx, cfg, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.5-flash", p.ModelID())
}

func TestLoggingProviderRecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[]}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, ProviderGemini, repo, zaptest.NewLogger(t))

	ctx := WithPurpose(context.Background(), PurposeQuiz)
	req := Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "desmatamento"}}}

	_, err = p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Equal(t, "boom", failed.ErrorMessage)
	assert.True(t, ok.Success)
	assert.Equal(t, ProviderGemini, ok.Provider)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, PurposeQuiz, ok.Purpose)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "desmatamento")
	assert.Equal(t, `{"questions":[]}`, ok.ResponseBody)
}

func TestLoggingProviderWithoutRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 0.3+2.5, c.Cost(1_000_000, 1_000_000), 1e-9)

	assert.Equal(t, c, LookupCost("google/gemini-2.5-flash"))
	assert.Nil(t, LookupCost("vendor/unknown-model"))
}

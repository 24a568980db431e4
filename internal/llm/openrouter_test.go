package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterSendsAttribution(t *testing.T) {
	var got http.Header
	var model string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		var body struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		model = body.Model
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(riverReply, "stop"))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), riverRequest())
	require.NoError(t, err)
	assert.Equal(t, openRouterAppURL, got.Get("HTTP-Referer"))
	assert.Equal(t, openRouterAppTitle, got.Get("X-Title"))
	assert.Equal(t, "Bearer sk-or-test", got.Get("Authorization"))
	assert.Equal(t, "google/gemini-2.5-flash", model, "vendor-qualified IDs pass through")
}

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"})
	assert.True(t, IsKind(err, KindAuth))

	_, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-haiku-4.5"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-haiku-4.5", p.ModelID())
}

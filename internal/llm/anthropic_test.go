package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 120, "output_tokens": 80},
	}
}

func riverRequest() Request {
	return Request{
		System:    "Você cria perguntas sobre limpeza de rios.",
		Messages:  []Message{{Role: RoleUser, Content: "Uma pergunta, por favor."}},
		MaxTokens: 512,
		Schema:    riverSchema(),
	}
}

func TestAnthropicGenerate(t *testing.T) {
	var body map[string]any
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("```json\n"+riverReply+"\n```", "end_turn"))
	})

	resp, err := p.Generate(context.Background(), riverRequest())
	require.NoError(t, err)
	assert.JSONEq(t, riverReply, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 120, OutputTokens: 80, TotalTokens: 200}, resp.Usage)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)
	assert.Equal(t, StopEnd, resp.StopReason)

	assert.Equal(t, "claude-haiku-4-5-20251001", body["model"])
	assert.EqualValues(t, 512, body["max_tokens"])
	assert.NotNil(t, body["system"])
}

func TestAnthropicErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header map[string]string
		kind   ErrorKind
		after  time.Duration
	}{
		{"rate limit", http.StatusTooManyRequests, map[string]string{"Retry-After": "3"}, KindRateLimit, 3 * time.Second},
		{"bad key", http.StatusUnauthorized, nil, KindAuth, 0},
		{"server error", http.StatusInternalServerError, nil, KindUnavailable, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"nope"}}`))
			})

			_, err := p.Generate(context.Background(), riverRequest())
			require.Error(t, err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.after, perr.RetryAfter)
		})
	}
}

func TestAnthropicTruncated(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"O que fazer com`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), riverRequest())
	assert.True(t, IsKind(err, KindTruncated), "got %v", err)
}

func TestAnthropicSchemaMismatch(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"question":"Só isso"}`, "end_turn"))
	})

	_, err := p.Generate(context.Background(), riverRequest())
	assert.True(t, IsKind(err, KindInvalid), "got %v", err)
}

func TestAnthropicRequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{})
	assert.True(t, IsKind(err, KindAuth))
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-5-20250929", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "gpt-5-mini", resolveModel("gpt-mini", openaiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "my-custom-model", resolveModel("my-custom-model", anthropicModels))
}

package llm

import (
	"errors"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterAppTitle       = "EcoAmazônia Guardians"
	openRouterAppURL         = "https://github.com/ecoamazonia/guardioes"
)

// OpenRouterProvider targets OpenRouter's OpenAI-compatible API. Model IDs
// are vendor-qualified ("google/gemini-2.5-flash") and passed through.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider that identifies the app to
// OpenRouter on every request.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, &Error{Kind: KindAuth, Err: errors.New("openrouter API key is required")}
	}
	if cfg.Model == "" {
		return nil, errors.New("openrouter model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	client := &http.Client{Transport: &attributionTransport{base: http.DefaultTransport}}
	return &OpenRouterProvider{OpenAIProvider: newChatProvider(cfg.APIKey, baseURL, cfg.Model, client)}, nil
}

// attributionTransport adds OpenRouter's app attribution headers.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterAppURL)
	req.Header.Set("X-Title", openRouterAppTitle)
	return t.base.RoundTrip(req)
}

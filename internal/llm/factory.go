package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/store"
)

// ErrNotConfigured is returned when no provider is selected and no vendor
// API key is present in the environment.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware. eventRepo may be nil, in which case requests are
// only logged through logger.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	case "":
		return nil, ErrNotConfigured
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → vendor, so each attempt is recorded.
	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	return WithRetry(logged, cfg.Retry, logger.Named("retry")), nil
}

// NewProviderFromConfig discovers a provider when cfg names none, validates
// it, and builds it. It returns ErrNotConfigured when nothing is available.
func NewProviderFromConfig(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if !Discover(&cfg) {
		return nil, ErrNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo, logger)
}

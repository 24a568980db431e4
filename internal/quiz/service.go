package quiz

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/llm"
)

// Service hands out quiz content. It never fails: when no provider is
// configured or generation goes wrong, it serves the built-in questions.
type Service struct {
	gen     *Generator
	cfg     Config
	timeout time.Duration
	logger  *zap.Logger

	riverSeq atomic.Int64
}

// Option configures a Service.
type Option func(*Service)

// WithConfig overrides DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithTimeout bounds each generation call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithLogger sets the logger used to report degraded generations.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service. provider may be nil.
func NewService(provider llm.Provider, opts ...Option) *Service {
	s := &Service{cfg: DefaultConfig(), timeout: 30 * time.Second}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if provider != nil {
		s.gen = NewGenerator(provider, s.cfg)
	}
	return s
}

// Available reports whether questions can be generated by an LLM.
func (s *Service) Available() bool { return s.gen != nil }

// PointsPerCorrect is the PN reward for each correct quiz answer.
func (s *Service) PointsPerCorrect() int { return s.cfg.PointsPerCorrect }

// Questions returns a quiz about topic in lang.
func (s *Service) Questions(ctx context.Context, topic string, lang i18n.Language) Set {
	set := Set{Topic: topic, Language: lang}
	if set.Topic == "" {
		set.Topic = DefaultTopic
	}

	if s.gen != nil {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()
		qs, err := s.gen.GenerateQuestions(ctx, set.Topic, lang)
		if err == nil {
			set.Questions = qs
			return set
		}
		s.logger.Warn("quiz generation failed, using built-in questions",
			zap.String("language", string(lang)), zap.Error(err))
	}

	set.Questions = FallbackQuestions(lang)
	set.Fallback = true
	return set
}

// RiverQuestion returns one river question in lang. The second result is
// false when the question is a built-in one.
func (s *Service) RiverQuestion(ctx context.Context, lang i18n.Language) (RiverQuestion, bool) {
	if s.gen != nil {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()
		q, err := s.gen.GenerateRiverQuestion(ctx, lang)
		if err == nil {
			return *q, true
		}
		s.logger.Warn("river question generation failed, using built-in question",
			zap.String("language", string(lang)), zap.Error(err))
	}
	n := s.riverSeq.Add(1) - 1
	return FallbackRiverQuestion(lang, int(n)), false
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

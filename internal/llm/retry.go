package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient failures with exponential backoff and
// jitter. Invalid output gets a single retry; auth and truncation errors
// are returned at once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	logger *zap.Logger

	// sleep waits for d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps p. logger may be nil.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) *RetryProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg, logger: logger, sleep: sleepCtx}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	invalidSeen := false
	for attempt := range r.config.MaxAttempts {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &invalidSeen) || attempt == r.config.MaxAttempts-1 {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.logger.Debug("retrying llm request",
			zap.String("purpose", PurposeFrom(ctx)),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		// Not classified by a provider: a transport error.
		return true
	}
	switch kind {
	case KindAuth, KindTruncated:
		return false
	case KindInvalid:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	default:
		return true
	}
}

// backoff returns the wait before the next attempt. A server-sent
// Retry-After wins, capped at MaxWait.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var perr *Error
	if errors.As(err, &perr) && perr.RetryAfter > 0 {
		return min(perr.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait)
	for range attempt {
		wait *= r.config.Multiplier
	}
	wait = min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1) // ±20%
	return time.Duration(max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/url"
	"time"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxRetryAfter        = 30 * time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryPolicy holds the retry settings shared by the football and news wrappers.
type retryPolicy struct {
	name        string
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

func newRetryPolicy(name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) retryPolicy {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return retryPolicy{
		name:        name,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			base := time.Duration(attempt) * backoff
			jitter := time.Duration(rand.Int63n(int64(backoff)/2 + 1))
			return base + jitter
		},
	}
}

// run calls op until it succeeds, fails with a non-retryable error, or attempts run out.
func run[T any](ctx context.Context, p retryPolicy, op func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		start := time.Now()
		out, err := op(ctx)
		p.metrics.RecordProviderAttempt(p.name, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		delay := p.backoffFn(attempt)
		if rl, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
			if rl.RetryAfter > delay {
				delay = min(rl.RetryAfter, maxRetryAfter)
			}
		}

		if !IsRetryable(err) || attempt == p.maxAttempts {
			break
		}

		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", p.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed", "err", lastErr)
	return zero, lastErr
}

type retryingProvider struct {
	inner  FootballProvider
	policy retryPolicy
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner FootballProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) FootballProvider {
	return &retryingProvider{
		inner:  inner,
		policy: newRetryPolicy(name, logger, recorder, maxAttempts, backoff),
	}
}

func (r *retryingProvider) Fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error) {
	return run(ctx, r.policy, func(ctx context.Context) ([]json.RawMessage, error) {
		return r.inner.Fetch(ctx, action, params)
	})
}

// Unwrap exposes the wrapped provider for cleanup.
func (r *retryingProvider) Unwrap() FootballProvider {
	return r.inner
}

type retryingNewsProvider struct {
	inner  NewsProvider
	policy retryPolicy
}

// NewRetryingNewsProvider wraps a NewsProvider with the same retry behavior as NewRetryingProvider.
func NewRetryingNewsProvider(inner NewsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) NewsProvider {
	return &retryingNewsProvider{
		inner:  inner,
		policy: newRetryPolicy(name, logger, recorder, maxAttempts, backoff),
	}
}

func (r *retryingNewsProvider) FetchNews(ctx context.Context) (news.Response, error) {
	return run(ctx, r.policy, func(ctx context.Context) (news.Response, error) {
		return r.inner.FetchNews(ctx)
	})
}

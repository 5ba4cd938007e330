package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
	breakerHalfOpenProbes  = 1
)

// BreakerSettings controls when the circuit opens and how long it stays open.
type BreakerSettings struct {
	MaxFailures int
	OpenTimeout time.Duration
}

func newBreaker(name string, settings BreakerSettings, logger *slog.Logger, recorder *metrics.Recorder) *gobreaker.CircuitBreaker {
	maxFailures := settings.MaxFailures
	if maxFailures <= 0 {
		maxFailures = defaultBreakerFailures
	}
	timeout := settings.OpenTimeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: breakerHalfOpenProbes,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(maxFailures)
		},
		// Upstream error payloads and cancellations say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || !IsRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change",
					slog.String("provider", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			}
			recorder.RecordBreakerState(name, to.String())
		},
	})
}

func execute[T any](cb *gobreaker.CircuitBreaker, op func() (T, error)) (T, error) {
	var zero T
	out, err := cb.Execute(func() (interface{}, error) {
		return op()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: breaker %s: %v", ErrProviderUnavailable, cb.Name(), err)
		}
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

type breakerProvider struct {
	inner FootballProvider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider fails fast with ErrProviderUnavailable once the inner provider keeps failing.
func NewBreakerProvider(inner FootballProvider, name string, settings BreakerSettings, logger *slog.Logger, recorder *metrics.Recorder) FootballProvider {
	return &breakerProvider{inner: inner, cb: newBreaker(name, settings, logger, recorder)}
}

func (b *breakerProvider) Fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error) {
	return execute(b.cb, func() ([]json.RawMessage, error) {
		return b.inner.Fetch(ctx, action, params)
	})
}

// Unwrap exposes the wrapped provider for cleanup.
func (b *breakerProvider) Unwrap() FootballProvider {
	return b.inner
}

type breakerNewsProvider struct {
	inner NewsProvider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerNewsProvider is the NewsProvider counterpart of NewBreakerProvider.
func NewBreakerNewsProvider(inner NewsProvider, name string, settings BreakerSettings, logger *slog.Logger, recorder *metrics.Recorder) NewsProvider {
	return &breakerNewsProvider{inner: inner, cb: newBreaker(name, settings, logger, recorder)}
}

func (b *breakerNewsProvider) FetchNews(ctx context.Context) (news.Response, error) {
	return execute(b.cb, func() (news.Response, error) {
		return b.inner.FetchNews(ctx)
	})
}

// Close releases resources held anywhere in a wrapped provider chain.
func Close(p FootballProvider) {
	for p != nil {
		if c, ok := p.(Closer); ok {
			c.Close()
		}
		u, ok := p.(interface{ Unwrap() FootballProvider })
		if !ok {
			return
		}
		p = u.Unwrap()
	}
}

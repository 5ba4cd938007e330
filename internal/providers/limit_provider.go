package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"
)

// rateLimitedProvider wraps a FootballProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     FootballProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a FootballProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next FootballProvider, interval time.Duration, logger *slog.Logger) FootballProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) Fetch(ctx context.Context, action string, params url.Values) ([]json.RawMessage, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", slog.String("action", action))
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch", slog.String("action", action))
	return p.next.Fetch(ctx, action, params)
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

// Unwrap exposes the wrapped provider for cleanup.
func (p *rateLimitedProvider) Unwrap() FootballProvider {
	return p.next
}

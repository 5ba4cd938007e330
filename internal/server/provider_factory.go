package server

import (
	"log/slog"

	"github.com/preston-bernstein/superliga-data-service/internal/config"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
)

// providerSet is the decorated upstream pair the services read through.
type providerSet struct {
	football providers.FootballProvider
	news     providers.NewsProvider
}

// close releases background resources held by the decorators.
func (p providerSet) close() {
	providers.Close(p.football)
}

// providerFactory assembles providers with shared wrappers (circuit breaker, retry, rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providerSet {
	football, news := selectProviders(cfg, f.logger)
	return f.wrap(cfg, football, news)
}

// wrap layers breaker over retry over the optional rate limiter.
func (f providerFactory) wrap(cfg config.Config, football providers.FootballProvider, news providers.NewsProvider) providerSet {
	up := cfg.Upstream
	settings := providers.BreakerSettings{MaxFailures: up.BreakerMaxFailures, OpenTimeout: up.BreakerOpenTimeout}

	var set providerSet
	if football != nil {
		name := normalizeProviderName(cfg.Provider, football)
		if up.MinInterval > 0 {
			football = providers.NewRateLimitedProvider(football, up.MinInterval, f.logger)
		}
		football = providers.NewRetryingProvider(football, f.logger, f.metrics, name, up.RetryAttempts, up.RetryBackoff)
		set.football = providers.NewBreakerProvider(football, name, settings, f.logger, f.metrics)
	}
	if news != nil {
		name := normalizeProviderName("", news)
		if cfg.Provider == providerAPIFootball {
			name = "newsapi"
		}
		news = providers.NewRetryingNewsProvider(news, f.logger, f.metrics, name, up.RetryAttempts, up.RetryBackoff)
		set.news = providers.NewBreakerNewsProvider(news, name, settings, f.logger, f.metrics)
	}
	return set
}

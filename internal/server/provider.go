package server

import (
	"log/slog"

	"github.com/preston-bernstein/superliga-data-service/internal/config"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/apifootball"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/fixture"
	"github.com/preston-bernstein/superliga-data-service/internal/providers/newsapi"
)

const (
	providerAPIFootball = "apifootball"
	providerFixture     = "fixture"
)

// selectProviders returns the bare football and news clients for the configured provider.
func selectProviders(cfg config.Config, logger *slog.Logger) (providers.FootballProvider, providers.NewsProvider) {
	switch cfg.Provider {
	case providerFixture, "":
		fx := fixture.New()
		return fx, fx
	case providerAPIFootball:
		fb := apifootball.NewClient(apifootball.Config{
			BaseURL: cfg.APIFootball.BaseURL,
			APIKey:  cfg.APIFootball.APIKey,
		})
		nw := newsapi.NewClient(newsapi.Config{
			BaseURL:  cfg.News.BaseURL,
			APIKey:   cfg.News.APIKey,
			Query:    cfg.News.Query,
			Language: cfg.News.Language,
			PageSize: cfg.News.PageSize,
		})
		return fb, nw
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		fx := fixture.New()
		return fx, fx
	}
}

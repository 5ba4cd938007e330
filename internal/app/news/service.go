package news

import (
	"context"
	"time"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
)

const (
	cacheKey   = "newsapi:everything"
	defaultTTL = 30 * time.Minute
)

// Tags carried by the cached news response.
var Tags = []string{"football-news", "news"}

// Service is the cached read path to the news API.
type Service struct {
	provider providers.NewsProvider
	loader   *cache.Loader
	ttl      time.Duration
}

// NewService constructs a news service. A zero ttl uses 30 minutes; a negative one disables caching.
func NewService(provider providers.NewsProvider, loader *cache.Loader, ttl time.Duration) *Service {
	if loader == nil {
		loader = cache.NewLoader(nil, nil, nil)
	}
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &Service{provider: provider, loader: loader, ttl: ttl}
}

// Latest returns the newest SuperLiga articles.
func (s *Service) Latest(ctx context.Context) (news.Response, error) {
	if s.provider == nil {
		return news.Response{}, providers.ErrProviderUnavailable
	}
	return cache.LoadJSON(ctx, s.loader, cacheKey, cache.Entry{TTL: s.ttl, Tags: Tags}, s.provider.FetchNews)
}

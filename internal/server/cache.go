package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/config"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
)

const cacheBackendRedis = "redis"

var newRedisClient = cache.NewRedisClient

// cacheComponents is the selected store plus its teardown.
type cacheComponents struct {
	store cache.Store
	stop  func() error
}

// buildCache selects the store. A redis backend that cannot be reached falls back to memory.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) cacheComponents {
	if !strings.EqualFold(cfg.Backend, cacheBackendRedis) {
		return cacheComponents{store: cache.NewMemoryStore()}
	}

	client, err := newRedisClient(ctx, cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TLS:      cfg.RedisTLS,
		Prefix:   cfg.KeyPrefix,
	}, logger)
	if err != nil {
		logging.Warn(logger, "redis unavailable, using in-memory cache", "error", err)
		return cacheComponents{store: cache.NewMemoryStore()}
	}

	shared := cache.NewRedisStore(client, cfg.KeyPrefix)
	store := cache.NewTieredStore(shared, cache.DefaultLocalTTL)
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go func() {
		if err := shared.Subscribe(subCtx, evictLocal(subCtx, store, logger)); err != nil {
			logging.Warn(logger, "redis invalidation feed stopped", "error", err)
		}
	}()

	return cacheComponents{
		store: store,
		stop: func() error {
			cancel()
			return shared.Close()
		},
	}
}

// evictLocal drops this replica's copies of a tag announced on the shared feed.
func evictLocal(ctx context.Context, store *cache.TieredStore, logger *slog.Logger) func(tag string) {
	return func(tag string) {
		n := store.Evict(ctx, tag)
		logging.Info(logger, "cache tag invalidated",
			slog.String(logging.FieldTag, tag),
			slog.Int("local_evicted", n),
		)
	}
}

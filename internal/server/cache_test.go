package server

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/config"
)

func TestBuildCacheDefaultsToMemory(t *testing.T) {
	c := buildCache(context.Background(), config.CacheConfig{Backend: "memory"}, nil)
	if _, ok := c.store.(*cache.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", c.store)
	}
	if c.stop != nil {
		t.Fatalf("expected no teardown for memory store")
	}
}

func TestBuildCacheFallsBackWhenRedisUnreachable(t *testing.T) {
	orig := newRedisClient
	defer func() { newRedisClient = orig }()

	var got cache.RedisConfig
	newRedisClient = func(ctx context.Context, cfg cache.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
		got = cfg
		return nil, errors.New("connection refused")
	}

	c := buildCache(context.Background(), config.CacheConfig{
		Backend:   "Redis",
		RedisAddr: "cache:6379",
		RedisDB:   2,
		KeyPrefix: "sl",
	}, nil)

	if got.Addr != "cache:6379" || got.DB != 2 || got.Prefix != "sl" {
		t.Fatalf("unexpected redis config %+v", got)
	}
	if _, ok := c.store.(*cache.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", c.store)
	}
}

func TestEvictLocalDropsPeerInvalidatedCopies(t *testing.T) {
	ctx := context.Background()
	shared := cache.NewMemoryStore()
	store := cache.NewTieredStore(shared, time.Minute)

	if err := store.Set(ctx, "standings", []byte(`[1]`), time.Hour, "standings-272"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// A peer revalidates: the shared entry is refreshed and the tag is announced.
	if err := shared.Set(ctx, "standings", []byte(`[2]`), time.Hour, "standings-272"); err != nil {
		t.Fatalf("peer set: %v", err)
	}

	evictLocal(ctx, store, nil)("standings-272")

	val, ok, err := store.Get(ctx, "standings")
	if err != nil || !ok {
		t.Fatalf("expected shared hit, got ok=%v err=%v", ok, err)
	}
	if string(val) != `[2]` {
		t.Fatalf("expected peer value after eviction, got %s", val)
	}
	if store.LocalLen() != 0 {
		t.Fatalf("expected empty local tier, got %d", store.LocalLen())
	}
}

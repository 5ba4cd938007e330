package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/preston-bernstein/superliga-data-service/internal/logging"
)

const (
	defaultKeyPrefix = "superliga"
	// Tag sets outlive the longest entry TTL (get_leagues).
	defaultTagTTL = 24 * time.Hour
)

// RedisConfig selects the redis server backing a RedisStore.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
	Prefix   string
}

// RedisStore is a Store shared by every replica through redis.
// Tag membership lives in redis sets and invalidations are announced over pub/sub.
type RedisStore struct {
	client *redis.Client
	prefix string
	tagTTL time.Duration
}

// NewRedisClient builds a client and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logging.Error(logger, "failed to connect to redis", err, "addr", cfg.Addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logging.Info(logger, "redis connected", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}

// NewRedisStore wraps an existing client. An empty prefix uses "superliga".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, tagTTL: defaultTagTTL}
}

func (s *RedisStore) entryKey(key string) string { return s.prefix + ":entry:" + key }
func (s *RedisStore) tagKey(tag string) string   { return s.prefix + ":tag:" + tag }

// Channel is the pub/sub channel invalidated tags are published on.
func (s *RedisStore) Channel() string { return s.prefix + ":revalidate" }

// Get reads one entry.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.entryKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return val, true, nil
}

// Set writes the entry and its tag memberships in one transaction.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	if ttl < 0 {
		ttl = 0
	}
	full := s.entryKey(key)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, full, value, ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, s.tagKey(tag), full)
			pipe.Expire(ctx, s.tagKey(tag), s.tagTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// InvalidateTag deletes the tagged entries and the tag set, then announces the tag to peers.
func (s *RedisStore) InvalidateTag(ctx context.Context, tag string) (int, error) {
	tagKey := s.tagKey(tag)
	keys, err := s.client.SMembers(ctx, tagKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis smembers: %w", err)
	}

	removed := 0
	if len(keys) > 0 {
		n, err := s.client.Del(ctx, keys...).Result()
		if err != nil {
			return 0, fmt.Errorf("redis del: %w", err)
		}
		removed = int(n)
	}
	if err := s.client.Del(ctx, tagKey).Err(); err != nil {
		return removed, fmt.Errorf("redis del tag: %w", err)
	}
	if err := s.client.Publish(ctx, s.Channel(), tag).Err(); err != nil {
		return removed, fmt.Errorf("redis publish: %w", err)
	}
	return removed, nil
}

// Subscribe calls fn for every tag invalidated by any replica until ctx is done.
func (s *RedisStore) Subscribe(ctx context.Context, fn func(tag string)) error {
	sub := s.client.Subscribe(ctx, s.Channel())
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			fn(msg.Payload)
		}
	}
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

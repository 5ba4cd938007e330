package cache

import (
	"context"
	"time"
)

// Store is a byte cache whose entries can be dropped in bulk by tag.
type Store interface {
	// Get returns the value for key. A missing or expired key reports ok=false with a nil error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl and indexes it under each tag. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error
	// InvalidateTag removes every entry indexed under tag and reports how many were removed.
	InvalidateTag(ctx context.Context, tag string) (int, error)
}

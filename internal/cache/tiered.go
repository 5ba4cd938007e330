package cache

import (
	"context"
	"time"
)

// DefaultLocalTTL bounds how long a replica serves its own copy of a shared entry.
const DefaultLocalTTL = 30 * time.Second

// TieredStore keeps a process-local copy of what this replica wrote in front of a shared store.
// Peers announce invalidations on the shared feed; Evict drops the matching local copies.
type TieredStore struct {
	local    *MemoryStore
	shared   Store
	localTTL time.Duration
}

// NewTieredStore layers a fresh MemoryStore over shared. A non-positive localTTL uses DefaultLocalTTL.
func NewTieredStore(shared Store, localTTL time.Duration) *TieredStore {
	if localTTL <= 0 {
		localTTL = DefaultLocalTTL
	}
	return &TieredStore{local: NewMemoryStore(), shared: shared, localTTL: localTTL}
}

// Get answers from the local copy when present, otherwise from the shared store.
func (s *TieredStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if val, ok, _ := s.local.Get(ctx, key); ok {
		return val, true, nil
	}
	return s.shared.Get(ctx, key)
}

// Set writes the shared store first; the local copy only exists once the shared write succeeded.
func (s *TieredStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	if err := s.shared.Set(ctx, key, value, ttl, tags...); err != nil {
		return err
	}
	local := s.localTTL
	if ttl > 0 && ttl < local {
		local = ttl
	}
	return s.local.Set(ctx, key, value, local, tags...)
}

// InvalidateTag clears the tag locally and in the shared store. The count is the shared one.
func (s *TieredStore) InvalidateTag(ctx context.Context, tag string) (int, error) {
	_, _ = s.local.InvalidateTag(ctx, tag)
	return s.shared.InvalidateTag(ctx, tag)
}

// Evict drops local copies under tag and leaves the shared store alone.
func (s *TieredStore) Evict(ctx context.Context, tag string) int {
	n, _ := s.local.InvalidateTag(ctx, tag)
	return n
}

// LocalLen reports how many entries the local tier holds.
func (s *TieredStore) LocalLen() int {
	return s.local.Len()
}

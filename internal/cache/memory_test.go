package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), time.Minute, "standings-272"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != "v" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok, err := s.Get(context.Background(), "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreExpiredEntriesAreSwept(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v"), time.Minute, "events")
	now = now.Add(time.Minute)

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if s.Len() != 0 {
		t.Fatalf("expected expired entry to be removed, len=%d", s.Len())
	}
	if _, ok := s.tags["events"]; ok {
		t.Fatalf("expected empty tag index to be dropped")
	}
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	_ = s.Set(context.Background(), "k", []byte("v"), 0)

	now = now.Add(24 * 365 * time.Hour)
	if _, ok, _ := s.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected entry without ttl to persist")
	}
}

func TestMemoryStoreInvalidateTag(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Set(ctx, "a", []byte("1"), time.Minute, "standings-272", "standings-all")
	_ = s.Set(ctx, "b", []byte("2"), time.Minute, "standings-272")
	_ = s.Set(ctx, "c", []byte("3"), time.Minute, "teams-272")

	removed, err := s.InvalidateTag(ctx, "standings-272")
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Fatalf("expected a to be invalidated")
	}
	if _, ok, _ := s.Get(ctx, "c"); !ok {
		t.Fatalf("expected c to survive")
	}
	if removed, _ := s.InvalidateTag(ctx, "standings-all"); removed != 0 {
		t.Fatalf("expected secondary tag to be cleaned up, removed %d", removed)
	}
}

func TestMemoryStoreSetRetagsExistingKey(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Set(ctx, "k", []byte("old"), time.Minute, "old-tag")
	_ = s.Set(ctx, "k", []byte("new"), time.Minute, "new-tag")

	if removed, _ := s.InvalidateTag(ctx, "old-tag"); removed != 0 {
		t.Fatalf("expected old tag to no longer reference key")
	}
	if removed, _ := s.InvalidateTag(ctx, "new-tag"); removed != 1 {
		t.Fatalf("expected new tag to reference key")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	val := []byte("original")
	_ = s.Set(ctx, "k", val, time.Minute)
	val[0] = 'X'

	got, _, _ := s.Get(ctx, "k")
	got[1] = 'Y'

	again, _, _ := s.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("expected store to remain unchanged, got %s", again)
	}
}

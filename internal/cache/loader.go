package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
)

const untagged = "untagged"

// Entry describes how a loaded value is stored. A negative TTL bypasses the store entirely.
type Entry struct {
	TTL  time.Duration
	Tags []string
}

func (e Entry) metricTag() string {
	if len(e.Tags) == 0 {
		return untagged
	}
	return e.Tags[0]
}

// LoadFunc produces the bytes to cache on a miss.
type LoadFunc func(ctx context.Context) ([]byte, error)

// Loader reads through a Store, collapsing concurrent misses for the same key into one load.
type Loader struct {
	store    Store
	group    singleflight.Group
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewLoader constructs a loader over store. A nil store disables caching.
func NewLoader(store Store, recorder *metrics.Recorder, logger *slog.Logger) *Loader {
	return &Loader{store: store, recorder: recorder, logger: logger}
}

// Store returns the backing store.
func (l *Loader) Store() Store {
	return l.store
}

// GetOrLoad returns the cached value for key or loads, stores and returns it.
// Load errors are returned to every waiting caller and never cached. Store errors only cost a cache miss.
func (l *Loader) GetOrLoad(ctx context.Context, key string, e Entry, load LoadFunc) ([]byte, error) {
	logger := logging.FromContext(ctx, l.logger)

	store := l.store
	if e.TTL < 0 {
		store = nil
	}

	if store != nil {
		val, ok, err := store.Get(ctx, key)
		if err != nil {
			logging.Warn(logger, "cache read failed", "key", key, logging.FieldTag, e.metricTag(), "err", err)
		} else if ok {
			l.recorder.RecordCacheLookup(e.metricTag(), true)
			return val, nil
		}
	}
	l.recorder.RecordCacheLookup(e.metricTag(), false)

	ch := l.group.DoChan(key, func() (any, error) {
		// Detached so one caller's cancellation does not fail the others.
		loadCtx := context.WithoutCancel(ctx)
		val, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if store != nil {
			if err := store.Set(loadCtx, key, val, e.TTL, e.Tags...); err != nil {
				logging.Warn(logger, "cache write failed", "key", key, logging.FieldTag, e.metricTag(), "err", err)
			}
		}
		return val, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// LoadJSON is GetOrLoad for values stored as JSON.
func LoadJSON[T any](ctx context.Context, l *Loader, key string, e Entry, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	raw, err := l.GetOrLoad(ctx, key, e, func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, err
	}
	return out, nil
}

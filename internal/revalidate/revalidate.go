package revalidate

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
)

// Audit event names.
const (
	EventSuccess      = "revalidation_success"
	EventUnauthorized = "revalidation_unauthorized"
	EventError        = "revalidation_error"
)

// Outcomes recorded in metrics.
const (
	OutcomeSuccess      = "success"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// ErrMissingTag is returned when no tag is supplied.
var ErrMissingTag = errors.New("missing tag parameter")

// KnownTags are the tags operators commonly revalidate, in display order.
var KnownTags = []string{
	"standings-272",
	"standings-271",
	"standings-270",
	"teams-all",
	"teams-272",
	"teams-271",
	"teams-270",
	"news",
}

// Event is an audit record of one revalidation attempt.
type Event struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Tag      string    `json:"tag"`
	Endpoint string    `json:"endpoint"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}

// Result describes a completed revalidation.
type Result struct {
	Tag     string    `json:"tag"`
	Removed int       `json:"removed"`
	Now     time.Time `json:"-"`
}

// NowMillis is the completion time in Unix milliseconds.
func (r Result) NowMillis() int64 {
	return r.Now.UnixMilli()
}

// Revalidator drops cached responses by tag on behalf of authorized callers.
type Revalidator struct {
	store    cache.Store
	secret   string
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string

	mu        sync.Mutex
	listeners []func(Event)
}

// New constructs a Revalidator. An empty secret rejects every caller.
func New(store cache.Store, secret string, recorder *metrics.Recorder, logger *slog.Logger) *Revalidator {
	return &Revalidator{
		store:    store,
		secret:   secret,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// OnEvent registers fn to receive every audit event.
func (r *Revalidator) OnEvent(fn func(Event)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Authorized compares secret with the configured one in constant time.
func (r *Revalidator) Authorized(secret string) bool {
	if r.secret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(r.secret)) == 1
}

// Reject records an unauthorized attempt.
func (r *Revalidator) Reject(ctx context.Context, tag, endpoint string) {
	r.emit(ctx, Event{Name: EventUnauthorized, Tag: tag, Endpoint: endpoint, Error: "invalid secret"}, OutcomeUnauthorized)
}

// Revalidate invalidates tag. Authorization is the caller's responsibility.
func (r *Revalidator) Revalidate(ctx context.Context, tag, endpoint string) (Result, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		r.emit(ctx, Event{Name: EventError, Endpoint: endpoint, Error: ErrMissingTag.Error()}, OutcomeError)
		return Result{}, ErrMissingTag
	}

	removed, err := r.store.InvalidateTag(ctx, tag)
	if err != nil {
		r.emit(ctx, Event{Name: EventError, Tag: tag, Endpoint: endpoint, Error: err.Error()}, OutcomeError)
		return Result{}, err
	}

	r.emit(ctx, Event{Name: EventSuccess, Tag: tag, Endpoint: endpoint}, OutcomeSuccess)
	return Result{Tag: tag, Removed: removed, Now: r.now()}, nil
}

// RevalidateAll invalidates every known tag, stopping at the first failure.
func (r *Revalidator) RevalidateAll(ctx context.Context, endpoint string) ([]Result, error) {
	results := make([]Result, 0, len(KnownTags))
	for _, tag := range KnownTags {
		res, err := r.Revalidate(ctx, tag, endpoint)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Revalidator) emit(ctx context.Context, ev Event, outcome string) {
	ev.ID = r.newID()
	ev.At = r.now()

	logger := logging.FromContext(ctx, r.logger)
	args := []any{"event_id", ev.ID, "event", ev.Name, logging.FieldTag, ev.Tag, "endpoint", ev.Endpoint}
	switch outcome {
	case OutcomeSuccess:
		logging.Info(logger, "cache revalidated", args...)
	case OutcomeUnauthorized:
		logging.Warn(logger, "revalidation rejected", args...)
	default:
		logging.Error(logger, "revalidation failed", errors.New(ev.Error), args...)
	}
	r.recorder.RecordRevalidation(ev.Tag, outcome)

	r.mu.Lock()
	listeners := append([]func(Event){}, r.listeners...)
	r.mu.Unlock()
	for _, fn := range listeners {
		fn(ev)
	}
}

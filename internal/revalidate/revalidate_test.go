package revalidate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/superliga-data-service/internal/cache"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
	"github.com/preston-bernstein/superliga-data-service/internal/testutil"
)

type brokenStore struct{ cache.Store }

func (brokenStore) InvalidateTag(context.Context, string) (int, error) {
	return 0, errors.New("redis down")
}

func newRevalidator(t *testing.T, store cache.Store, secret string) (*Revalidator, *metrics.Recorder, *[]Event) {
	t.Helper()
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	r := New(store, secret, rec, logger)
	r.now = testutil.NowAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	var events []Event
	r.OnEvent(func(ev Event) { events = append(events, ev) })
	return r, rec, &events
}

func TestAuthorized(t *testing.T) {
	r, _, _ := newRevalidator(t, cache.NewMemoryStore(), "s3cret")

	assert.True(t, r.Authorized("s3cret"))
	assert.False(t, r.Authorized("wrong"))
	assert.False(t, r.Authorized(""))
	assert.False(t, r.Authorized("s3cret-longer"))
}

func TestUnsetSecretRejectsEveryone(t *testing.T) {
	r, _, _ := newRevalidator(t, cache.NewMemoryStore(), "")

	assert.False(t, r.Authorized(""))
	assert.False(t, r.Authorized("anything"))
}

func TestRevalidateInvalidatesAndEmitsSuccess(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute, "standings-272"))
	r, rec, events := newRevalidator(t, store, "s")

	res, err := r.Revalidate(ctx, " standings-272 ", "/api/revalidate")
	require.NoError(t, err)
	assert.Equal(t, "standings-272", res.Tag)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, int64(1714564800000), res.NowMillis())

	_, ok, _ := store.Get(ctx, "k")
	assert.False(t, ok)

	require.Len(t, *events, 1)
	ev := (*events)[0]
	assert.Equal(t, EventSuccess, ev.Name)
	assert.Equal(t, "/api/revalidate", ev.Endpoint)
	assert.Len(t, ev.ID, 36)
	assert.Equal(t, 1, rec.Revalidations(OutcomeSuccess))
}

func TestRevalidateMissingTag(t *testing.T) {
	r, _, events := newRevalidator(t, cache.NewMemoryStore(), "s")

	_, err := r.Revalidate(context.Background(), "  ", "/api")
	assert.ErrorIs(t, err, ErrMissingTag)
	require.Len(t, *events, 1)
	assert.Equal(t, EventError, (*events)[0].Name)
	assert.Equal(t, "missing tag parameter", (*events)[0].Error)
}

func TestRevalidateStoreFailureEmitsError(t *testing.T) {
	r, rec, events := newRevalidator(t, brokenStore{}, "s")

	_, err := r.Revalidate(context.Background(), "news", "/api/revalidate")
	require.Error(t, err)
	require.Len(t, *events, 1)
	assert.Equal(t, EventError, (*events)[0].Name)
	assert.Equal(t, "redis down", (*events)[0].Error)
	assert.Equal(t, 1, rec.Revalidations(OutcomeError))
}

func TestRejectEmitsUnauthorized(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	r := New(cache.NewMemoryStore(), "s", nil, logger)
	var got []Event
	r.OnEvent(func(ev Event) { got = append(got, ev) })

	r.Reject(context.Background(), "teams-272", "/api/revalidate")

	require.Len(t, got, 1)
	assert.Equal(t, EventUnauthorized, got[0].Name)
	assert.NotEqual(t, "", got[0].ID)
	assert.True(t, strings.Contains(buf.String(), "revalidation rejected"))
}

func TestRevalidateAllCoversKnownTags(t *testing.T) {
	r, _, events := newRevalidator(t, cache.NewMemoryStore(), "s")

	results, err := r.RevalidateAll(context.Background(), "/admin/revalidate")
	require.NoError(t, err)
	assert.Len(t, results, len(KnownTags))
	assert.Len(t, *events, len(KnownTags))
	assert.Equal(t, "news", results[len(results)-1].Tag)
}

func TestEventIDsAreUnique(t *testing.T) {
	r, _, events := newRevalidator(t, cache.NewMemoryStore(), "s")
	_, _ = r.Revalidate(context.Background(), "a", "x")
	_, _ = r.Revalidate(context.Background(), "b", "x")

	require.Len(t, *events, 2)
	assert.NotEqual(t, (*events)[0].ID, (*events)[1].ID)
}

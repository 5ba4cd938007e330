package poller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubSource struct {
	mu        sync.Mutex
	leagues   []string
	err       error
	teamsErr  error
	calls     atomic.Int32
	notify    chan struct{}
	notifyOne sync.Once
}

func (s *stubSource) Standings(ctx context.Context, leagueID string) ([]standings.Standing, error) {
	_ = ctx
	s.calls.Add(1)
	s.mu.Lock()
	s.leagues = append(s.leagues, leagueID)
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return []standings.Standing{{TeamName: "Rapid"}, {TeamName: "FCSB"}}, nil
}

func (s *stubSource) TeamRecords(ctx context.Context, leagueID string) ([]json.RawMessage, error) {
	_ = ctx
	_ = leagueID
	if s.notify != nil {
		s.notifyOne.Do(func() { close(s.notify) })
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.teamsErr != nil {
		return nil, s.teamsErr
	}
	return []json.RawMessage{json.RawMessage(`{"team_key":"1"}`)}, nil
}

func (s *stubSource) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubSource) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]string(nil), s.leagues...)
	sort.Strings(out)
	return out
}

func TestPollerRefreshesEveryLeague(t *testing.T) {
	src := &stubSource{}
	p := New(src, nil, nil, time.Minute)

	p.fetchOnce(context.Background())

	got := src.seen()
	want := []string{"270", "271", "272"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !p.Status().IsReady() {
		t.Fatalf("expected ready after successful cycle")
	}
}

func TestPollerStartWarmsImmediately(t *testing.T) {
	src := &stubSource{notify: make(chan struct{})}
	p := New(src, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case <-src.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if src.calls.Load() < 3 {
		t.Fatalf("expected at least one full cycle, got %d standings calls", src.calls.Load())
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	src := &stubSource{}
	p := New(src, nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	p.wg.Wait()
	_ = p.Stop(context.Background())
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubSource{}, nil, nil, time.Minute)
	p.Start(context.Background())

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestPollerStopBeforeStart(t *testing.T) {
	p := New(&stubSource{}, nil, nil, time.Minute)
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("expected stop without start to succeed, got %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	src := &stubSource{notify: make(chan struct{})}
	p := New(src, nil, nil, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx)
	<-src.notify

	_ = p.Stop(context.Background())
	if got := src.calls.Load(); got != 3 {
		t.Fatalf("expected a single warm-up cycle, got %d standings calls", got)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&stubSource{}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval, got %s", p.interval)
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	p := New(src, nil, nil, time.Minute)
	ctx := context.Background()

	p.fetchOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("expected failure recorded, got %+v", status)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready before any success")
	}

	src.setErr(nil)
	p.fetchOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 || status.LastSuccess.IsZero() || !status.IsReady() {
		t.Fatalf("expected recovery, got %+v", status)
	}

	src.setErr(errors.New("down"))
	for i := 0; i < readyFailureLimit; i++ {
		p.fetchOnce(ctx)
	}
	if p.Status().IsReady() {
		t.Fatalf("expected not ready after %d consecutive failures", readyFailureLimit)
	}
}

func TestPollerTeamsFailureFailsCycle(t *testing.T) {
	src := &stubSource{teamsErr: errors.New("teams down")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := New(src, logger, nil, time.Minute)

	p.fetchOnce(context.Background())
	if p.Status().LastError != "teams down" {
		t.Fatalf("expected teams error recorded, got %q", p.Status().LastError)
	}
}

func TestPollerStopHonorsContext(t *testing.T) {
	p := New(&stubSource{}, nil, nil, time.Minute)
	p.wg.Add(1)
	defer p.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Stop(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error while cycle in flight, got %v", err)
	}
}

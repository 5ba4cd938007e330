package poller

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/metrics"
)

const defaultInterval = 5 * time.Minute

// readyFailureLimit is the number of consecutive failed cycles after which the poller reports not ready.
const readyFailureLimit = 3

// Source is the read path the poller keeps warm.
type Source interface {
	Standings(ctx context.Context, leagueID string) ([]standings.Standing, error)
	TeamRecords(ctx context.Context, leagueID string) ([]json.RawMessage, error)
}

// Poller refreshes the tracked standings and Liga I clubs on an interval so readers hit a warm cache.
type Poller struct {
	source   Source
	leagues  []string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	wg       sync.WaitGroup

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// New constructs a Poller over the Romanian leagues.
func New(source Source, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		source:   source,
		leagues:  leagues.RomanianIDs(),
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.ticker.Stop()

		logging.Info(p.logger, "poller started", logging.Duration(p.interval))
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop and waits for an in-flight cycle until ctx expires.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.done) })

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fetchOnce loads every tracked table and the Liga I clubs concurrently. Any failure fails the cycle.
func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	var rows atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range p.leagues {
		id := id
		g.Go(func() error {
			items, err := p.source.Standings(gctx, id)
			if err != nil {
				logging.Warn(p.logger, "poller standings refresh failed", logging.League(id), "error", err)
				return err
			}
			rows.Add(int64(len(items)))
			return nil
		})
	}
	g.Go(func() error {
		items, err := p.source.TeamRecords(gctx, leagues.LigaI)
		if err != nil {
			logging.Warn(p.logger, "poller teams refresh failed", logging.League(leagues.LigaI), "error", err)
			return err
		}
		rows.Add(int64(len(items)))
		return nil
	})
	err := g.Wait()

	elapsed := p.now().Sub(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	if err != nil {
		logging.Error(p.logger, "poller cycle failed", err, logging.Duration(elapsed))
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed data",
		slog.Int64(logging.FieldCount, rows.Load()),
		logging.Duration(elapsed),
	)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

package server

import (
	"context"
	"time"

	"github.com/preston-bernstein/superliga-data-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// noopPoller stands in when polling is disabled. It always reports ready.
type noopPoller struct {
	since time.Time
}

func (noopPoller) Start(context.Context)      {}
func (noopPoller) Stop(context.Context) error { return nil }

func (p noopPoller) Status() poller.Status {
	return poller.Status{LastSuccess: p.since}
}

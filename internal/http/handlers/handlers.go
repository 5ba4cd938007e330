package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	teamsapp "github.com/preston-bernstein/superliga-data-service/internal/app/teams"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/matches"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/news"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/standings"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/teams"
	"github.com/preston-bernstein/superliga-data-service/internal/poller"
	"github.com/preston-bernstein/superliga-data-service/internal/revalidate"
)

// FootballService is the sports data read path.
type FootballService interface {
	Query(ctx context.Context, params url.Values) ([]json.RawMessage, error)
	LiveMatches(ctx context.Context) (matches.LiveResponse, error)
}

// StandingsService builds league tables.
type StandingsService interface {
	Table(ctx context.Context, leagueID string) (standings.Table, error)
}

// TeamsService lists clubs.
type TeamsService interface {
	Teams(ctx context.Context, leagueID string) (teamsapp.Result, error)
	TeamByKey(ctx context.Context, leagueID, key string) (teams.Team, bool, error)
}

// NewsService returns articles.
type NewsService interface {
	Latest(ctx context.Context) (news.Response, error)
}

// Deps are the collaborators a Handler serves from. Nil services answer 503.
type Deps struct {
	Football    FootballService
	Standings   StandingsService
	Teams       TeamsService
	News        NewsService
	Revalidator *revalidate.Revalidator
	Status      func() poller.Status
	Logger      *slog.Logger
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	football    FootballService
	standings   StandingsService
	teams       TeamsService
	news        NewsService
	revalidator *revalidate.Revalidator
	statusFn    func() poller.Status
	logger      *slog.Logger
	now         func() time.Time
	draining    atomic.Bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(d Deps) *Handler {
	return &Handler{
		football:    d.Football,
		standings:   d.Standings,
		teams:       d.Teams,
		news:        d.News,
		revalidator: d.Revalidator,
		statusFn:    d.Status,
		logger:      d.Logger,
		now:         time.Now,
	}
}

// BeginShutdown makes /health and /ready answer 503 so load balancers stop routing here.
func (h *Handler) BeginShutdown() {
	h.draining.Store(true)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.draining.Load() || r.Context().Err() != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.draining.Load() {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unmatched paths with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) unavailable(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusServiceUnavailable, "service not configured", h.logger)
}

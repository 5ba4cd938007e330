package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	standingsapp "github.com/preston-bernstein/superliga-data-service/internal/app/standings"
	teamsapp "github.com/preston-bernstein/superliga-data-service/internal/app/teams"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/leagues"
	"github.com/preston-bernstein/superliga-data-service/internal/domain/teams"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/providers"
)

// teamDetail is a club with its squad grouped by position.
type teamDetail struct {
	teams.Team
	Squad []teams.PositionGroup `json:"squad"`
}

// Teams serves the Liga I clubs exactly as upstream sent them, falling back to built-in data when upstream has none.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.teams == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)

	res, err := h.teams.Teams(r.Context(), leagues.LigaI)
	if err != nil {
		h.teamsError(w, r, err, logger)
		return
	}
	if res.Fallback {
		logging.Warn(logger, "serving fallback teams", logging.League(leagues.LigaI))
		w.Header().Set("X-Data-Source", "fallback")
	}
	writeJSON(w, http.StatusOK, res.Records, logger)
}

// TeamByKey serves one Liga I club and its squad.
func (h *Handler) TeamByKey(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.teams == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)

	key := strings.TrimSpace(r.PathValue("teamKey"))
	if key == "" {
		writeError(w, r, http.StatusBadRequest, "invalid team key", logger)
		return
	}

	team, ok, err := h.teams.TeamByKey(r.Context(), leagues.LigaI, key)
	if err != nil {
		h.teamsError(w, r, err, logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", logger)
		return
	}
	writeJSON(w, http.StatusOK, teamDetail{Team: team, Squad: teamsapp.Squad(team)}, logger)
}

func (h *Handler) teamsError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if apiErr, ok := providers.AsAPIError(err); ok {
		msg := apiErr.Detail
		if msg == "" {
			msg = apiErr.Body
		}
		logging.Warn(logger, "upstream rejected teams request", slog.String("upstream_error", apiErr.Message))
		writeErrorDetail(w, r, http.StatusBadRequest, "API Error", msg, logger)
		return
	}
	logging.Error(logger, "teams fetch failed", err)
	writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to fetch team data", err.Error(), logger)
}

// FootballNews serves the latest SuperLiga articles.
func (h *Handler) FootballNews(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.news == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)

	resp, err := h.news.Latest(r.Context())
	if err != nil {
		logging.Error(logger, "news fetch failed", err)
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to fetch football news", err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

// Standings serves the derived table for ?league_id (default Liga I).
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.standings == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)

	leagueID := strings.TrimSpace(r.URL.Query().Get("league_id"))
	if leagueID == "" {
		leagueID = leagues.LigaI
	}

	table, err := h.standings.Table(r.Context(), leagueID)
	if errors.Is(err, standingsapp.ErrUnknownLeague) {
		writeError(w, r, http.StatusBadRequest, "unknown league", logger)
		return
	}
	if err != nil {
		logging.Error(logger, "standings fetch failed", err, logging.League(leagueID))
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to fetch standings", err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, table, logger)
}

// Live serves today's in-progress matches.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.football == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)

	resp, err := h.football.LiveMatches(r.Context())
	if err != nil {
		logging.Error(logger, "live matches fetch failed", err)
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to fetch live matches", err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

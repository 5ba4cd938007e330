package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/superliga-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/revalidate"
)

const eventHistorySize = 100

// AdminHandler exposes operator endpoints guarded by a bearer token.
type AdminHandler struct {
	revalidator *revalidate.Revalidator
	history     *revalidate.History
	token       string
	logger      *slog.Logger
}

// NewAdminHandler constructs an AdminHandler and starts recording the revalidator's audit events.
// An empty token rejects every request.
func NewAdminHandler(revalidator *revalidate.Revalidator, token string, logger *slog.Logger) *AdminHandler {
	history := revalidate.NewHistory(eventHistorySize)
	if revalidator != nil {
		revalidator.OnEvent(history.Record)
	}
	return &AdminHandler{
		revalidator: revalidator,
		history:     history,
		token:       token,
		logger:      logger,
	}
}

// Events lists recent revalidation audit events, newest first.
func (h *AdminHandler) Events(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if !h.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": h.history.Recent()}, loggerFromContext(r, h.logger))
}

// Tags lists the tags operators can revalidate.
func (h *AdminHandler) Tags(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if !h.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tags": revalidate.KnownTags}, loggerFromContext(r, h.logger))
}

// RevalidateAll drops the cache for every known tag.
func (h *AdminHandler) RevalidateAll(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/admin/revalidate"
	if !requireMethod(w, r, h.logger, http.MethodPost) {
		return
	}
	if !h.authorize(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.revalidator == nil {
		writeError(w, r, http.StatusServiceUnavailable, "revalidation not configured", logger)
		return
	}

	results, err := h.revalidator.RevalidateAll(r.Context(), endpoint)
	if err != nil {
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to revalidate", err.Error(), logger)
		return
	}

	removed := 0
	for _, res := range results {
		removed += res.Removed
	}
	logging.Info(logger, "admin revalidated all tags", slog.Int(logging.FieldCount, len(results)), slog.Int("removed", removed))
	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true,
		"results":     results,
	}, logger)
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if requestutil.BearerMatches(r, h.token) {
		return true
	}
	logging.Warn(h.logger, "admin unauthorized",
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
	return false
}

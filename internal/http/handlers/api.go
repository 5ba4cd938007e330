package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/superliga-data-service/internal/app/football"
	"github.com/preston-bernstein/superliga-data-service/internal/logging"
	"github.com/preston-bernstein/superliga-data-service/internal/revalidate"
)

// API serves /api: GET proxies an upstream action, POST is the legacy tag revalidation.
func (h *Handler) API(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet, http.MethodPost) {
		return
	}
	if r.Method == http.MethodPost {
		h.legacyRevalidate(w, r)
		return
	}
	h.proxy(w, r)
}

func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	if h.football == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)

	records, err := h.football.Query(r.Context(), r.URL.Query())
	if errors.Is(err, football.ErrMissingAction) {
		writeError(w, r, http.StatusBadRequest, "Missing action parameter", logger)
		return
	}
	if err != nil {
		logging.Error(logger, "proxy fetch failed", err, slog.String(logging.FieldAction, r.URL.Query().Get("action")))
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to fetch data", err.Error(), logger)
		return
	}

	logging.Debug(logger, "proxy served", slog.String(logging.FieldAction, r.URL.Query().Get("action")), slog.Int(logging.FieldCount, len(records)))
	writeJSON(w, http.StatusOK, records, logger)
}

func (h *Handler) legacyRevalidate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/api"
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()

	tag := q.Get("tag")
	if tag == "" {
		writeError(w, r, http.StatusBadRequest, "Missing tag parameter", logger)
		return
	}
	if h.revalidator == nil {
		h.unavailable(w, r)
		return
	}
	if !h.revalidator.Authorized(q.Get("secret")) {
		h.revalidator.Reject(r.Context(), tag, endpoint)
		writeError(w, r, http.StatusUnauthorized, "Invalid secret", logger)
		return
	}

	res, err := h.revalidator.Revalidate(r.Context(), tag, endpoint)
	if err != nil {
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to revalidate", err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true,
		"now":         res.NowMillis(),
	}, logger)
}

// Revalidate serves /api/revalidate for GET and POST.
func (h *Handler) Revalidate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/api/revalidate"
	if !requireMethod(w, r, h.logger, http.MethodGet, http.MethodPost) {
		return
	}
	if h.revalidator == nil {
		h.unavailable(w, r)
		return
	}
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	tag := q.Get("tag")

	if !h.revalidator.Authorized(q.Get("secret")) {
		h.revalidator.Reject(r.Context(), tag, endpoint)
		writeError(w, r, http.StatusUnauthorized, "Invalid secret", logger)
		return
	}

	res, err := h.revalidator.Revalidate(r.Context(), tag, endpoint)
	if errors.Is(err, revalidate.ErrMissingTag) {
		writeError(w, r, http.StatusBadRequest, "Missing tag parameter", logger)
		return
	}
	if err != nil {
		writeErrorDetail(w, r, http.StatusInternalServerError, "Failed to revalidate", err.Error(), logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true,
		"tag":         res.Tag,
		"now":         res.NowMillis(),
		"message":     `Cache for tag "` + res.Tag + `" has been successfully revalidated.`,
	}, logger)
}

package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/superliga-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Admin routes are mounted only when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/api", handler.API)
	mux.HandleFunc("/api/revalidate", handler.Revalidate)
	mux.HandleFunc("/api/teams", handler.Teams)
	mux.HandleFunc("/api/teams/{teamKey}", handler.TeamByKey)
	mux.HandleFunc("/api/football-news", handler.FootballNews)
	mux.HandleFunc("/api/standings", handler.Standings)
	mux.HandleFunc("/api/live", handler.Live)

	if admin != nil {
		mux.HandleFunc("/admin/tags", admin.Tags)
		mux.HandleFunc("/admin/revalidate", admin.RevalidateAll)
		mux.HandleFunc("/admin/events", admin.Events)
	}

	mux.HandleFunc("/", handler.NotFound)
	return mux
}

package logging

import (
	"log/slog"
	"time"
)

// Structured log keys shared across packages.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldAction     = "action"
	FieldLeague     = "league_id"
	FieldTag        = "tag"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

// League tags a record with the league it concerns.
func League(id string) slog.Attr { return slog.String(FieldLeague, id) }

// Duration records d in whole milliseconds.
func Duration(d time.Duration) slog.Attr { return slog.Int64(FieldDurationMS, d.Milliseconds()) }

// identity returns the service/version pair as logger args, skipping blanks.
func identity(service, version string) []any {
	var args []any
	if service != "" {
		args = append(args, slog.String(FieldService, service))
	}
	if version != "" {
		args = append(args, slog.String(FieldVersion, version))
	}
	return args
}

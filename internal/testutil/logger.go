package testutil

import (
	"bytes"
	"log/slog"
	"time"
)

// NewBufferLogger returns a debug-level text logger writing to the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// NowAt returns a clock function fixed at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Package logging builds the leveled slog.Logger the CLI writes to
// stderr. The engine packages stay silent; diagnostics are logged from
// cmd only.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name to a slog.Level. Supported values:
// "info" and "debug" (case-insensitive); unknown values default to
// info.
func ParseLevel(s string) slog.Level {
	if strings.ToLower(s) == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger creates a leveled text logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

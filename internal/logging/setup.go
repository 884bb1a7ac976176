// Package logging builds slog handlers for the fsmctl command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewHandler returns a handler for format "json" or, for any other value, text.
func NewHandler(format, level string, w io.Writer) slog.Handler {
	if strings.EqualFold(format, "json") {
		return NewJSONHandler(level, w)
	}
	return NewTextHandler(level, w)
}

// NewTextHandler returns a human-readable handler writing to w (stderr if nil).
// "trace" behaves like "debug" and also reports timestamps and callers.
func NewTextHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}

	opts := log.Options{Level: log.InfoLevel}
	switch strings.ToLower(level) {
	case "trace":
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		opts.ReportTimestamp = true
	case "debug":
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
	case "warn", "warning":
		opts.Level = log.WarnLevel
	case "error":
		opts.Level = log.ErrorLevel
	}
	return log.NewWithOptions(w, opts)
}

// NewJSONHandler returns a JSON handler writing to w (stdout if nil).
func NewJSONHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(level, "trace") {
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs a handler as the default logger and returns it.
func Setup(format, level string, w io.Writer) *slog.Logger {
	logger := slog.New(NewHandler(format, level, w))
	slog.SetDefault(logger)
	return logger
}

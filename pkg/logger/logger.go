// Package logger provides structured slog logging with per-call context
// attribute extraction and optional Sentry error reporting.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds logger settings.
type Config struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"` // debug, info, warn, error
}

// New creates a JSON logger writing to stdout. Extractors inject
// request-scoped attributes (request ID and the like) on every log call.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	return slog.New(newContextHandler(h, extractors...))
}

// NewNop creates a logger that discards everything. Used as a default
// when logging is not configured, e.g. in tests.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

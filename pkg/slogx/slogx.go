// Package slogx wires log/slog for the scheduler: a process-wide logger
// carrying service identity, plus request-scoped loggers passed through
// context.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// DefaultService is used when Config.Service is left empty.
const DefaultService = "scheduler"

type Config struct {
	Service string
	Version string
	Env     string // "dev" enables source locations
	Level   string // debug, info, warn, error
	Format  string // json (default) or text
}

// New builds a logger from cfg, installs it as the slog default, and
// returns it. Every line carries the service, version and env attrs so
// aggregated logs from several shops stay attributable.
func New(cfg Config) *slog.Logger {
	if cfg.Service == "" {
		cfg.Service = DefaultService
	}

	logger := slog.New(newHandler(cfg)).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev",
		Level:     parseLevel(cfg.Level),
	}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}

// parseLevel is forgiving: unknown strings fall back to info rather
// than failing startup over a typo in an env var.
func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

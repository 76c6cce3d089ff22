package slogx

import (
	"context"
	"log/slog"
)

// loggerKey is unexported so only this package can attach loggers.
type loggerKey struct{}

// WithContext attaches logger to ctx. Middleware uses it to carry a
// request-scoped logger (request id, method, path) down the call chain.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx. Callers never get nil:
// if nothing was attached, the process default is returned, so code deep
// in the grid or store layers can log without plumbing a logger through.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

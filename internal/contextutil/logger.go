// Package contextutil carries the request-scoped logger through context.
// The HTTP logger middleware stores a logger annotated with the request id
// under LoggerKey; everything downstream (handlers, service, composers)
// retrieves it with LoggerFromContext.
package contextutil

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// LoggerFromContext returns the request-scoped logger, or the process
// default when the context carries none (tests, background work).
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// LoggerKey returns the context key the logger middleware stores under.
// The key type is unexported so no other package can collide with it.
func LoggerKey() contextKey {
	return loggerKey
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores and retrieves the per-request values the middleware
// chain attaches to a [context.Context]: the correlation id, the request
// logger and the self-declared caller id.
package ctxutil

import (
	"context"
	"log/slog"
)

// contextKey is unexported so no other package can collide with these keys.
type contextKey uint8

const (
	keyRequestID contextKey = iota
	keyLogger
	keyCallerID
)

// lookup returns the value stored under key, or the zero T.
func lookup[T any](ctx context.Context, key contextKey) (T, bool) {
	value, ok := ctx.Value(key).(T)
	return value, ok
}

// # Request Tracing

// WithRequestID attaches the X-Request-ID correlation value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID returns the correlation value, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := lookup[string](ctx, keyRequestID)
	return id
}

// # Structured Logging

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := lookup[*slog.Logger](ctx, keyLogger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Caller Identity

// WithCallerID attaches the caller's self-declared user id.
func WithCallerID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, keyCallerID, userID)
}

// GetCallerID returns the declared user id, or "" when the request carried none.
func GetCallerID(ctx context.Context) string {
	id, _ := lookup[string](ctx, keyCallerID)
	return id
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the application logger and provides a slog handler
// that stamps page-load context onto every record.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type ctxKey int

const (
	pageKey ctxKey = iota
	requestIDKey
)

// WithPage returns a context carrying the page being rendered.
func WithPage(ctx context.Context, page string) context.Context {
	return context.WithValue(ctx, pageKey, page)
}

// WithRequestID returns a context carrying the id of the request that triggered the render.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// PageHandler is a slog.Handler that wraps another handler and adds the page
// and request id found in the record's context as attributes.
type PageHandler struct {
	inner slog.Handler
}

// NewPageHandler creates a new PageHandler that wraps the given handler.
func NewPageHandler(inner slog.Handler) *PageHandler {
	return &PageHandler{inner: inner}
}

// Enabled implements slog.Handler.
func (h *PageHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *PageHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if page, ok := ctx.Value(pageKey).(string); ok && page != "" {
			r.AddAttrs(slog.String("page", page))
		}
		if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
			r.AddAttrs(slog.String("request_id", id))
		}
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *PageHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PageHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *PageHandler) WithGroup(name string) slog.Handler {
	return &PageHandler{inner: h.inner.WithGroup(name)}
}

// ParseLevel converts a FOLIO_LOG_LEVEL value to a slog.Level.
// Unknown values map to info.
func ParseLevel(s string) slog.Level {
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

// New creates the application logger: text output in development,
// JSON in production, both wrapped in a PageHandler.
func New(w io.Writer, level string, isDev bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var inner slog.Handler
	if isDev {
		inner = slog.NewTextHandler(w, opts)
	} else {
		inner = slog.NewJSONHandler(w, opts)
	}

	return slog.New(NewPageHandler(inner))
}

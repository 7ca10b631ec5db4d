// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/ritrovo/ritrovo/internal/middleware"
	"github.com/ritrovo/ritrovo/pkg/model"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record].
// It uses the same attribute keys as the Gin [middleware.RequestLogger] so
// records written by the middleware and by context-aware logger methods can be
// found together. Not every log happens inside an HTTP request, so missing
// context values are fine.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}

	// public routes do not have a session identity in the context
	if identity, ok := model.GetIdentityFromContext(ctx); ok {
		r.AddAttrs(slog.Any(middleware.RequestLoggerKeyIdentity, identity))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(h.Handler.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return New(h.Handler.WithGroup(name))
}

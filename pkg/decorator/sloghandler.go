package decorator

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context. The boolean reports
// whether the context carried the value at all.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler decorates a slog.Handler with attributes extracted from the
// context at log time. Extraction happens per record, so request-scoped
// values stay fresh across a handler's lifetime.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with the given extractors. Nil extractors are
// dropped; a nil next panics, since a handler chain without a terminal is a
// wiring mistake.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	if next == nil {
		panic("decorator: nil slog handler")
	}
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &ContextHandler{next: next, extractors: clean}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle attaches extracted attributes to the record and delegates.
func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

// WithAttrs delegates static attributes to the wrapped handler while keeping
// the extractor set.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

// WithGroup delegates grouping to the wrapped handler while keeping the
// extractor set.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

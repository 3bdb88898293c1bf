// Package decorator implements the Decorator pattern: wrapping an object in
// layers that add behavior while preserving its interface, composed at
// runtime instead of baked in by subclassing.
//
// Two production-shaped subjects are included.
//
// ContextHandler decorates a slog.Handler, pulling attributes out of the
// context (request IDs, tenant IDs) and attaching them to every record before
// delegating to the wrapped handler. The decorated handler is itself a
// slog.Handler, so decorators stack freely.
//
// The generic Fetcher decorators wrap any key-to-value lookup:
//
//	base := decorator.FetcherFunc[string, Profile](loadProfile)
//	cached := decorator.WithMemo(base)
//	fetcher := decorator.WithLogging(cached, logger)
//
// Composition order is behavior: logging outside the memo records every
// request, logging inside records only cache misses. The tests pin both
// orderings down, because this is the part of the pattern people get wrong.
package decorator

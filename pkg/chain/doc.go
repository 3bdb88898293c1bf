// Package chain implements the Chain of Responsibility pattern: a request
// travels along a sequence of handlers until one claims it.
//
// Two renderings are included, because Go has two.
//
// The generic Chain passes a request to each handler in order. A handler
// reports whether it handled the request; the first claim stops the chain,
// and a request no handler claims comes back as ErrUnhandled. This is the
// textbook shape - approval chains, escalation tiers, fallback lookups.
//
// The HTTP middleware stack is the production shape. Middleware is the
// standard func(http.Handler) http.Handler; Compose nests them so the first
// listed middleware is the outermost, and NewRouter mounts a stack onto a
// chi router. RequestLogger and Recoverer are the two members every service
// ends up needing.
//
// # Usage
//
//	c := chain.New(
//	    chain.HandlerFunc[Ticket](tierOne),
//	    chain.HandlerFunc[Ticket](tierTwo),
//	    chain.HandlerFunc[Ticket](engineering),
//	)
//	err := c.Handle(ctx, ticket) // ErrUnhandled if nobody claims it
//
//	r := chain.NewRouter(chain.RequestLogger(logger), chain.Recoverer(logger))
//	r.Get("/health", healthHandler)
package chain

// Package builder demonstrates the Builder pattern: separating the
// construction of a complex object from its representation, so the same
// construction process can produce different configurations - and invalid
// configurations cannot escape.
//
// Go has three native renderings of Builder, and this package ships all
// three against one subject, a server configuration:
//
//   - A fluent builder (ServerBuilder) with chained setters and a terminal
//     Build that validates the whole configuration at once and returns typed
//     field errors. Use this when construction is multi-step or conditional.
//   - Functional options (New with Option values), the dominant Go idiom for
//     optional configuration. Use this when most fields have sensible
//     defaults.
//   - A staged builder (Request) whose steps are enforced by the type system:
//     each stage returns an interface exposing only the legal next step, so
//     "forgot to set the recipient" is a compile error, not a runtime one.
//
// # Why a terminal Build
//
// Validating in each setter forces callers to handle an error per call and
// still cannot check cross-field rules (a TLS certificate without its key).
// Deferring validation to Build keeps the chain fluent and lets the builder
// see the complete picture before anything is constructed. The built Server
// is an immutable value: there is no way to mutate it past validation.
//
// # Usage
//
//	srv, err := builder.NewServer().
//	    Host("0.0.0.0").
//	    Port(8443).
//	    TLS("/etc/tls/cert.pem", "/etc/tls/key.pem").
//	    ReadTimeout(5 * time.Second).
//	    Build()
package builder

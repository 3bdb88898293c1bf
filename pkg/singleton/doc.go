// Package singleton provides exactly-once lazy initialization primitives: the
// Go rendering of the Singleton pattern.
//
// The classic pattern guards a single shared instance behind a synchronized
// accessor. In Go that job belongs to sync.Once, and the idiomatic unit of
// sharing is a package-level variable rather than a class with a private
// constructor. This package packages that idiom three ways:
//
//   - Lazy[T]: a typed, lazily-initialized value. Initialization runs at most
//     once even under concurrent first access, and a failed initialization is
//     not cached, so the next Get retries.
//   - Instance: a process-wide keyed instance cache for cases where several
//     singletons of the same type must coexist (one client per upstream, one
//     pool per DSN).
//   - Config: environment-backed configuration loaded exactly once per struct
//     type, the most common real-world singleton.
//
// # Usage
//
//	var db = singleton.NewLazy(func() (*sql.DB, error) {
//	    return sql.Open("postgres", dsn)
//	})
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    conn, err := db.Get()
//	    ...
//	}
//
// Keyed instances share by name:
//
//	client, err := singleton.Instance("billing", newBillingClient)
//
// # When not to use it
//
// A singleton is process-global state. Prefer passing dependencies explicitly
// and reserve these helpers for genuinely process-wide resources: parsed
// configuration, connection pools, compiled regexps, interned tables.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Reset helpers exist for tests
// and are not intended for production code paths.
package singleton

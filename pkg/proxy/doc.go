// Package proxy implements the Proxy pattern: stand-ins that control access
// to an underlying subject while presenting its exact interface.
//
// Every proxy here wraps the same subject interface, Store - a context-aware
// key-to-value lookup - so proxies compose with each other and callers cannot
// tell a stand-in from the real thing:
//
//   - CachingProxy answers repeat lookups from an LRU cache with TTL,
//     shielding an expensive subject from redundant work.
//   - RateLimitedProxy is a protection proxy: a token bucket ahead of the
//     subject, returning ErrRateLimited instead of forwarding excess load.
//   - LazyProxy is a virtual proxy: the subject is not even constructed
//     until the first call needs it.
//
// RedisStore is the remote subject the proxies typically guard: a Store
// backed by a Redis instance, with the connection configured from the
// environment.
//
// # Usage
//
//	store := proxy.NewCachingProxy[string, string](
//	    proxy.NewRateLimitedProxy(remote, 100, 10),
//	    proxy.WithCapacity(1024),
//	    proxy.WithTTL(time.Minute),
//	)
//
//	v, err := store.Get(ctx, "user:42")
package proxy

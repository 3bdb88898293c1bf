// Package flyweight implements the Flyweight pattern: sharing one immutable
// value among many logical users instead of allocating a copy per use.
//
// The pattern matters when an application holds huge numbers of objects whose
// intrinsic state repeats - text styles across a document, parsed schemas
// across requests, metric label sets. Pool interns values by key: the first
// request for a key builds the value, every later request for an equal key
// returns the same shared instance. Shared values must be treated as
// immutable; that is the whole contract.
//
// # Usage
//
//	styles := flyweight.NewPool(func(k flyweight.StyleKey) *flyweight.TextStyle {
//	    return flyweight.NewTextStyle(k)
//	})
//
//	a := styles.Get(flyweight.StyleKey{Font: "Inter", Size: 14})
//	b := styles.Get(flyweight.StyleKey{Font: "Inter", Size: 14})
//	// a == b: one object, shared
//
// Stats exposes hit/miss counters so the saving is observable rather than
// assumed.
//
// # Thread Safety
//
// Pool is safe for concurrent use. Under a racing first access the factory
// may run more than once for a key, but all callers receive the single value
// that won the store; factories should therefore be pure.
package flyweight

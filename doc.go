// Package patternkit is a catalog of the classic design patterns rendered as
// small, production-idiom Go packages.
//
// Each pattern lives in its own package under pkg/, with no shared runtime and
// no state crossing package boundaries. A package carries three things: prose
// explaining the pattern and when it earns its keep in Go, a working
// implementation (real validation, real concurrency where the pattern demands
// it, typed errors), and runnable examples that double as usage documentation.
//
// The catalog follows the three classic categories:
//
// Creational - concerned with object creation:
//
//   - pkg/singleton: exactly-once lazy initialization (sync.Once, keyed caches)
//   - pkg/builder: fluent construction with terminal validation
//   - pkg/factory: factory method via a type-safe constructor registry
//   - pkg/abstractfactory: families of matched products (codec pairs)
//   - pkg/prototype: registries of cloneable exemplars
//
// Structural - concerned with object composition:
//
//   - pkg/adapter: incompatible APIs behind a target interface
//   - pkg/bridge: abstraction and implementation varying independently
//   - pkg/composite: recursive part-whole trees
//   - pkg/decorator: layered behavior without subclassing
//   - pkg/facade: one entry point over several subsystems
//   - pkg/flyweight: shared immutable values via interning
//   - pkg/proxy: caching, rate-limiting, and lazy stand-ins
//
// Behavioral - concerned with object interaction:
//
//   - pkg/chain: chain of responsibility, including HTTP middleware
//   - pkg/command: encapsulated operations with undo and async execution
//   - pkg/iterator: iter.Seq based external iteration and paging
//   - pkg/mediator: topic-routed colleague communication
//   - pkg/memento: opaque snapshots with bounded history
//   - pkg/observer: broadcast to decoupled subscribers
//   - pkg/state: guarded finite state machines
//   - pkg/strategy: interchangeable algorithms behind one interface
//   - pkg/templatemethod: fixed pipelines with pluggable steps
//   - pkg/visitor: double-dispatch operations over object structures
//
// Packages are independent by design: import the one you need. The lone
// exception is pkg/facade, which deliberately composes sibling packages to
// show patterns cooperating, because that is the point of a facade.
package patternkit

package factory

import (
	"fmt"
	"slices"
	"sync"
)

// Constructor creates a product of type T. Constructors may fail, so wiring
// problems (bad credentials, missing files) surface at creation time rather
// than first use.
type Constructor[T any] func() (T, error)

// Registry maps names to constructors for products of type T.
type Registry[T any] struct {
	mu           sync.RWMutex
	constructors map[string]Constructor[T]
}

// NewRegistry creates an empty constructor registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		constructors: make(map[string]Constructor[T]),
	}
}

// Register associates a constructor with a name. Duplicate names are rejected
// with an AlreadyRegisteredError so conflicting registrations are caught at
// wiring time instead of silently replacing each other.
func (r *Registry[T]) Register(name string, ctor Constructor[T]) error {
	if name == "" {
		return ErrEmptyName
	}
	if ctor == nil {
		return ErrNilConstructor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return &AlreadyRegisteredError{Name: name}
	}
	r.constructors[name] = ctor
	return nil
}

// MustRegister works like Register but panics on failure. For static
// registration during startup where a conflict should prevent boot.
func (r *Registry[T]) MustRegister(name string, ctor Constructor[T]) {
	if err := r.Register(name, ctor); err != nil {
		panic(fmt.Sprintf("factory: register %q: %v", name, err))
	}
}

// New creates a product by name. Unknown names return an UnknownNameError
// listing the registered names.
func (r *Registry[T]) New(name string) (T, error) {
	r.mu.RLock()
	ctor, ok := r.constructors[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, &UnknownNameError{Name: name, Known: r.Names()}
	}
	return ctor()
}

// MustNew works like New but panics on failure.
func (r *Registry[T]) MustNew(name string) T {
	v, err := r.New(name)
	if err != nil {
		panic(fmt.Sprintf("factory: new %q: %v", name, err))
	}
	return v
}

// Has reports whether a constructor is registered under name.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[name]
	return ok
}

// Names returns a sorted snapshot of registered names.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered constructors.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.constructors)
}

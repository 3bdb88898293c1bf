package prototype

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Cloner is the prototype contract: Clone returns an independent copy.
// Implementations must deep-copy mutable state (maps, slices, pointers) so
// mutations of the clone never reach the original.
type Cloner[T any] interface {
	Clone() T
}

var (
	// ErrEmptyName is returned when registering a prototype under an empty name.
	ErrEmptyName = errors.New("prototype: empty name")
)

// NotRegisteredError is returned when cloning an unknown prototype.
type NotRegisteredError struct {
	Name  string
	Known []string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("prototype: %q is not registered (known: %v)", e.Name, e.Known)
}

func IsNotRegisteredError(err error) bool {
	var e *NotRegisteredError
	return errors.As(err, &e)
}

// Registry stores named prototype exemplars and spawns clones on demand.
// Registered prototypes are treated as immutable templates; Clone never hands
// out the exemplar itself.
type Registry[T Cloner[T]] struct {
	mu         sync.RWMutex
	prototypes map[string]T
}

// NewRegistry creates an empty prototype registry.
func NewRegistry[T Cloner[T]]() *Registry[T] {
	return &Registry[T]{
		prototypes: make(map[string]T),
	}
}

// Register stores an exemplar under name. Re-registering a name replaces the
// previous exemplar; unlike constructor registries, swapping a template is a
// legitimate operation.
func (r *Registry[T]) Register(name string, proto T) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prototypes[name] = proto
	return nil
}

// MustRegister works like Register but panics on failure.
func (r *Registry[T]) MustRegister(name string, proto T) {
	if err := r.Register(name, proto); err != nil {
		panic(fmt.Sprintf("prototype: register %q: %v", name, err))
	}
}

// Clone returns an independent copy of the exemplar registered under name.
func (r *Registry[T]) Clone(name string) (T, error) {
	r.mu.RLock()
	proto, ok := r.prototypes[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, &NotRegisteredError{Name: name, Known: r.Names()}
	}
	return proto.Clone(), nil
}

// MustClone works like Clone but panics on failure.
func (r *Registry[T]) MustClone(name string) T {
	v, err := r.Clone(name)
	if err != nil {
		panic(fmt.Sprintf("prototype: clone %q: %v", name, err))
	}
	return v
}

// Names returns a sorted snapshot of registered prototype names.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

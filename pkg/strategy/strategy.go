package strategy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrEmptyName is returned when creating or registering a strategy
	// with an empty name.
	ErrEmptyName = errors.New("strategy: empty name")

	// ErrNilStrategy is returned when registering a nil strategy.
	ErrNilStrategy = errors.New("strategy: nil strategy")
)

// UnknownStrategyError is returned when selecting a name with no registered
// strategy. Known lists the registered names for actionable messages.
type UnknownStrategyError struct {
	Name  string
	Known []string
}

func (e UnknownStrategyError) Error() string {
	return fmt.Sprintf("strategy: unknown strategy %q (registered: %v)", e.Name, e.Known)
}

// AlreadyRegisteredError is returned when registering a name twice.
type AlreadyRegisteredError struct {
	Name string
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("strategy: %q already registered", e.Name)
}

// Strategy is a named, swappable computation from I to O.
type Strategy[I, O any] interface {
	Name() string
	Apply(ctx context.Context, in I) (O, error)
}

type funcStrategy[I, O any] struct {
	name string
	fn   func(ctx context.Context, in I) (O, error)
}

// New builds a strategy from a function. Panics on an empty name or nil
// function, since both make the value unusable.
func New[I, O any](name string, fn func(ctx context.Context, in I) (O, error)) Strategy[I, O] {
	if name == "" {
		panic(ErrEmptyName)
	}
	if fn == nil {
		panic(ErrNilStrategy)
	}
	return &funcStrategy[I, O]{name: name, fn: fn}
}

func (s *funcStrategy[I, O]) Name() string { return s.name }

func (s *funcStrategy[I, O]) Apply(ctx context.Context, in I) (O, error) {
	return s.fn(ctx, in)
}

// Selector holds a family of strategies and dispatches by name. Safe for
// concurrent use.
type Selector[I, O any] struct {
	mu         sync.RWMutex
	strategies map[string]Strategy[I, O]
}

// NewSelector creates an empty selector.
func NewSelector[I, O any]() *Selector[I, O] {
	return &Selector[I, O]{strategies: make(map[string]Strategy[I, O])}
}

// Register adds a strategy under its own name.
func (s *Selector[I, O]) Register(strat Strategy[I, O]) error {
	if strat == nil {
		return ErrNilStrategy
	}
	name := strat.Name()
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.strategies[name]; ok {
		return AlreadyRegisteredError{Name: name}
	}
	s.strategies[name] = strat
	return nil
}

// MustRegister is like Register but panics on error. For wiring at startup.
func (s *Selector[I, O]) MustRegister(strat Strategy[I, O]) {
	if err := s.Register(strat); err != nil {
		panic(err)
	}
}

// Select returns the strategy registered under name.
func (s *Selector[I, O]) Select(name string) (Strategy[I, O], error) {
	s.mu.RLock()
	strat, ok := s.strategies[name]
	s.mu.RUnlock()

	if !ok {
		return nil, UnknownStrategyError{Name: name, Known: s.Names()}
	}
	return strat, nil
}

// Apply selects a strategy by name and applies it in one call.
func (s *Selector[I, O]) Apply(ctx context.Context, name string, in I) (O, error) {
	strat, err := s.Select(name)
	if err != nil {
		var zero O
		return zero, err
	}
	return strat.Apply(ctx, in)
}

// Names returns the registered strategy names, sorted.
func (s *Selector[I, O]) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

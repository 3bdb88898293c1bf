package state

import (
	"context"
	"fmt"
	"sync"
)

// Machine is a thread-safe finite state machine. Transitions are indexed
// by from-state and event name for constant-time lookup; several
// transitions may share an index entry, with guards choosing between them
// in declaration order.
type Machine struct {
	mu      sync.RWMutex
	initial State
	current State
	edges   map[string]map[string][]Transition
}

// New creates a machine in the given initial state. Transitions are added
// through options; an option error aborts construction.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilState
	}

	m := &Machine{
		initial: initial,
		current: initial,
		edges:   make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error. For machines wired at startup
// from static declarations.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("state: %v", err))
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Define adds a transition. Declaring multiple transitions for the same
// from-state and event is allowed; guards arbitrate between them at fire
// time, first declared wins.
func (m *Machine) Define(t Transition) error {
	if t.From == nil || t.To == nil {
		return ErrNilState
	}
	if t.Event == nil {
		return ErrNilEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	from := t.From.Name()
	if m.edges[from] == nil {
		m.edges[from] = make(map[string][]Transition)
	}
	m.edges[from][t.Event.Name()] = append(m.edges[from][t.Event.Name()], t)
	return nil
}

// Fire applies an event. The first matching transition whose guards all
// pass is taken: its actions run in order, then the state changes. An
// action error aborts the transition with the machine unchanged.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrNilEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.pick(ctx, event, data)
	if t == nil {
		if len(m.edges[m.current.Name()][event.Name()]) == 0 {
			return &NoTransitionError{State: m.current.Name(), Event: event.Name()}
		}
		return &RejectedError{State: m.current.Name(), Event: event.Name()}
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("state: action on %q: %w", event.Name(), err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire would find a transition whose guards pass.
// It runs guards but no actions.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pick(ctx, event, data) != nil
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// pick finds the first transition for event from the current state whose
// guards all pass. Caller holds at least a read lock.
func (m *Machine) pick(ctx context.Context, event Event, data any) *Transition {
	candidates := m.edges[m.current.Name()][event.Name()]
	for i := range candidates {
		t := &candidates[i]
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t
		}
	}
	return nil
}

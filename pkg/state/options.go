package state

import "fmt"

// Option configures a machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards and actions to a transition declared
// through WithTransition.
type TransitionOption func(*Transition)

// WithTransition declares a single transition.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			if opt != nil {
				opt(&t)
			}
		}
		return m.Define(t)
	}
}

// WithTransitions declares a batch of transitions.
func WithTransitions(transitions ...Transition) Option {
	return func(m *Machine) error {
		for i, t := range transitions {
			if err := m.Define(t); err != nil {
				return fmt.Errorf("state: transition %d: %w", i, err)
			}
		}
		return nil
	}
}

// WithGuard adds a guard to the transition. Nil guards are dropped.
func WithGuard(g Guard) TransitionOption {
	return func(t *Transition) {
		if g != nil {
			t.Guards = append(t.Guards, g)
		}
	}
}

// WithGuards adds several guards to the transition.
func WithGuards(guards ...Guard) TransitionOption {
	return func(t *Transition) {
		for _, g := range guards {
			if g != nil {
				t.Guards = append(t.Guards, g)
			}
		}
	}
}

// WithAction adds an action to the transition. Nil actions are dropped.
func WithAction(a Action) TransitionOption {
	return func(t *Transition) {
		if a != nil {
			t.Actions = append(t.Actions, a)
		}
	}
}

// WithActions adds several actions to the transition.
func WithActions(actions ...Action) TransitionOption {
	return func(t *Transition) {
		for _, a := range actions {
			if a != nil {
				t.Actions = append(t.Actions, a)
			}
		}
	}
}

package state

import "context"

// State is a named node in the machine's transition graph.
type State interface {
	Name() string
}

// Event is a named trigger for transitions.
type Event interface {
	Name() string
}

// StringState is the simplest State implementation.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is the simplest Event implementation.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

// Guard decides at fire time whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs a side effect during a transition, before the state changes.
// Returning an error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition is one edge of the machine's graph.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

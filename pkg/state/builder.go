package state

import "fmt"

// Builder declares a machine fluently. Errors are collected as transitions
// are added and reported once by Build, so chains stay unbroken:
//
//	m, err := state.NewBuilder(initial).
//	    From(a).On(next).To(b).Add().
//	    From(b).On(back).To(a).Guard(allowed).Add().
//	    Build()
type Builder struct {
	initial State
	pending Transition
	defs    []Transition
	errs    []error
}

// NewBuilder starts a builder for a machine beginning in initial.
func NewBuilder(initial State) *Builder {
	return &Builder{initial: initial}
}

// From starts a new transition declaration.
func (b *Builder) From(s State) *Builder {
	b.pending = Transition{From: s}
	return b
}

// On sets the event that triggers the pending transition.
func (b *Builder) On(e Event) *Builder {
	b.pending.Event = e
	return b
}

// To sets the target state of the pending transition.
func (b *Builder) To(s State) *Builder {
	b.pending.To = s
	return b
}

// Guard appends a guard to the pending transition.
func (b *Builder) Guard(g Guard) *Builder {
	if g != nil {
		b.pending.Guards = append(b.pending.Guards, g)
	}
	return b
}

// Action appends an action to the pending transition.
func (b *Builder) Action(a Action) *Builder {
	if a != nil {
		b.pending.Actions = append(b.pending.Actions, a)
	}
	return b
}

// Add finalizes the pending transition. Validation problems are recorded
// and surface from Build.
func (b *Builder) Add() *Builder {
	t := b.pending
	b.pending = Transition{}

	switch {
	case t.From == nil || t.To == nil:
		b.errs = append(b.errs, fmt.Errorf("state: transition %d: %w", len(b.defs), ErrNilState))
	case t.Event == nil:
		b.errs = append(b.errs, fmt.Errorf("state: transition %d: %w", len(b.defs), ErrNilEvent))
	default:
		b.defs = append(b.defs, t)
	}
	return b
}

// Build constructs the machine, returning the first recorded error if any
// declaration was invalid.
func (b *Builder) Build() (*Machine, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return New(b.initial, WithTransitions(b.defs...))
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Machine {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

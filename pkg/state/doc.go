// Package state implements a finite state machine whose behavior changes
// with its current state: firing the same event in different states leads
// to different transitions, and events with no transition from the current
// state fail with a typed error instead of silently doing nothing.
//
// Transitions are declared up front with functional options:
//
//	m := state.MustNew(state.StringState("pending"),
//	    state.WithTransition(
//	        state.StringState("pending"), state.StringState("paid"),
//	        state.StringEvent("pay"),
//	        state.WithAction(chargeCard),
//	    ),
//	    state.WithTransition(
//	        state.StringState("pending"), state.StringState("cancelled"),
//	        state.StringEvent("cancel"),
//	    ),
//	)
//
//	err := m.Fire(ctx, state.StringEvent("pay"), order)
//
// Several transitions may share a from-state and event; the first one whose
// guards all pass wins, so guard order expresses priority. Actions run
// before the state changes and any action error aborts the transition,
// leaving the machine where it was.
//
// Builder offers the same declarations fluently, collecting errors until
// Build:
//
//	m, err := state.NewBuilder(draft).
//	    From(draft).On(submit).To(review).Guard(hasContent).Add().
//	    From(review).On(approve).To(published).Add().
//	    Build()
//
// Failure modes are distinguishable: NoTransitionError means the event is
// not wired from the current state at all, RejectedError means transitions
// exist but every guard said no.
package state

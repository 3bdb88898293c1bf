package state

import (
	"errors"
	"fmt"
)

var (
	// ErrNilState is returned when a transition names a nil state.
	ErrNilState = errors.New("state: nil state in transition")

	// ErrNilEvent is returned when firing or declaring a nil event.
	ErrNilEvent = errors.New("state: nil event")
)

// NoTransitionError is returned by Fire when the current state has no
// transition wired for the event.
type NoTransitionError struct {
	State string
	Event string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("state: no transition from %q on %q", e.State, e.Event)
}

// IsNoTransitionError reports whether err is a NoTransitionError.
func IsNoTransitionError(err error) bool {
	var target *NoTransitionError
	return errors.As(err, &target)
}

// RejectedError is returned by Fire when transitions exist for the event
// but every candidate was refused by its guards.
type RejectedError struct {
	State string
	Event string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("state: transition from %q on %q rejected by guards", e.State, e.Event)
}

// IsRejectedError reports whether err is a RejectedError.
func IsRejectedError(err error) bool {
	var target *RejectedError
	return errors.As(err, &target)
}

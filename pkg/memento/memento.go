package memento

import (
	"time"

	"github.com/google/uuid"
)

// Memento is an opaque snapshot of an originator's state. The state field
// is unexported, so caretakers can store and shuffle mementos but only the
// originator's Restore can make use of one. The originator is responsible
// for deep-copying mutable state on both Capture and State, so a stored
// snapshot cannot be changed after the fact.
type Memento[T any] struct {
	id      uuid.UUID
	takenAt time.Time
	state   T
}

// Capture wraps state in a memento stamped with a fresh id and timestamp.
func Capture[T any](state T) Memento[T] {
	return Memento[T]{
		id:      uuid.New(),
		takenAt: time.Now(),
		state:   state,
	}
}

// ID returns the snapshot's unique identifier.
func (m Memento[T]) ID() uuid.UUID { return m.id }

// TakenAt returns when the snapshot was captured.
func (m Memento[T]) TakenAt() time.Time { return m.takenAt }

// State returns the captured state. Only the originator should call this.
func (m Memento[T]) State() T { return m.state }

// Originator is anything that can snapshot and restore its own state.
type Originator[T any] interface {
	Save() Memento[T]
	Restore(Memento[T])
}

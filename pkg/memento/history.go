package memento

import (
	"errors"
	"sync"
)

var (
	// ErrNothingToUndo is returned by Undo when no checkpoints exist.
	ErrNothingToUndo = errors.New("memento: nothing to undo")

	// ErrNothingToRedo is returned by Redo when no undone states exist.
	ErrNothingToRedo = errors.New("memento: nothing to redo")
)

// DefaultLimit is the checkpoint depth used when WithLimit is not given.
const DefaultLimit = 100

// History is a caretaker: a bounded undo/redo stack of mementos for a
// single originator. It never inspects the snapshots it holds. Safe for
// concurrent use.
type History[T any] struct {
	mu     sync.Mutex
	origin Originator[T]
	past   []Memento[T]
	future []Memento[T]
	limit  int
}

// HistoryOption configures a History.
type HistoryOption func(*historyConfig)

type historyConfig struct {
	limit int
}

// WithLimit caps the number of retained checkpoints. When the cap is
// reached the oldest checkpoint is dropped. Panics on a non-positive
// limit.
func WithLimit(n int) HistoryOption {
	if n <= 0 {
		panic("memento: history limit must be positive")
	}
	return func(c *historyConfig) {
		c.limit = n
	}
}

// NewHistory creates a history for origin. Panics on a nil originator.
func NewHistory[T any](origin Originator[T], opts ...HistoryOption) *History[T] {
	if origin == nil {
		panic("memento: nil originator")
	}

	cfg := historyConfig{limit: DefaultLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &History[T]{origin: origin, limit: cfg.limit}
}

// Checkpoint saves the originator's current state. Any undone states are
// discarded: once you act after undoing, that branch of history is gone.
func (h *History[T]) Checkpoint() {
	m := h.origin.Save()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = append(h.past, m)
	h.future = nil
	if len(h.past) > h.limit {
		// Drop the oldest; shift rather than reslice so the backing array
		// does not pin dropped snapshots.
		copy(h.past, h.past[1:])
		h.past = h.past[:h.limit]
	}
}

// Undo restores the most recent checkpoint. The originator's current state
// is saved first so Redo can bring it back.
func (h *History[T]) Undo() error {
	h.mu.Lock()
	if len(h.past) == 0 {
		h.mu.Unlock()
		return ErrNothingToUndo
	}
	current := h.origin.Save()
	m := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	h.mu.Unlock()

	h.origin.Restore(m)
	return nil
}

// Redo restores the most recently undone state.
func (h *History[T]) Redo() error {
	h.mu.Lock()
	if len(h.future) == 0 {
		h.mu.Unlock()
		return ErrNothingToRedo
	}
	current := h.origin.Save()
	m := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	h.mu.Unlock()

	h.origin.Restore(m)
	return nil
}

// Len returns the number of stored checkpoints.
func (h *History[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past)
}

// RedoLen returns the number of undone states available to Redo.
func (h *History[T]) RedoLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future)
}

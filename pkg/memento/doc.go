// Package memento captures and restores object state without exposing its
// internals. The originator produces opaque snapshots of itself; a caretaker
// stores them and hands them back, but can never look inside or edit one -
// only the originator that made a snapshot can interpret it.
//
// An originator implements Save and Restore:
//
//	type Canvas struct{ shapes []Shape }
//
//	func (c *Canvas) Save() memento.Memento[[]Shape] {
//	    return memento.Capture(slices.Clone(c.shapes))
//	}
//
//	func (c *Canvas) Restore(m memento.Memento[[]Shape]) {
//	    c.shapes = slices.Clone(m.State())
//	}
//
// History is the caretaker. It keeps a bounded stack of checkpoints with an
// undo/redo cursor:
//
//	h := memento.NewHistory[[]Shape](canvas, memento.WithLimit(50))
//	h.Checkpoint()          // before a risky edit
//	// ... edit goes wrong ...
//	err := h.Undo()         // canvas is back to the checkpoint
//	err = h.Redo()          // and forward again
//
// When the stack is full the oldest checkpoint is dropped, so memory stays
// bounded while recent history survives. A new checkpoint after an undo
// discards the redo branch.
//
// Document is a worked originator: a text document whose snapshots deep-copy
// the body and metadata so later edits cannot corrupt saved states.
package memento

package command

import (
	"context"
	"sync"
)

// Invoker executes commands and keeps undo/redo history. A new command wipes
// the redo stack, matching editor semantics: once you act after undoing,
// the undone future is gone.
type Invoker struct {
	mu      sync.Mutex
	history []Command
	redo    []Command
}

// NewInvoker creates an invoker with empty history.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// Do executes the command and, on success, records it for undo. Failed
// commands are not recorded.
func (inv *Invoker) Do(ctx context.Context, cmd Command) error {
	if err := cmd.Execute(ctx); err != nil {
		return err
	}

	inv.mu.Lock()
	inv.history = append(inv.history, cmd)
	inv.redo = nil
	inv.mu.Unlock()
	return nil
}

// Undo reverses the most recent command and moves it to the redo stack.
// A failed undo leaves the command on the history stack so it can be
// retried.
func (inv *Invoker) Undo(ctx context.Context) error {
	inv.mu.Lock()
	if len(inv.history) == 0 {
		inv.mu.Unlock()
		return ErrNothingToUndo
	}
	cmd := inv.history[len(inv.history)-1]
	inv.mu.Unlock()

	if err := cmd.Undo(ctx); err != nil {
		return err
	}

	inv.mu.Lock()
	inv.history = inv.history[:len(inv.history)-1]
	inv.redo = append(inv.redo, cmd)
	inv.mu.Unlock()
	return nil
}

// Redo re-executes the most recently undone command.
func (inv *Invoker) Redo(ctx context.Context) error {
	inv.mu.Lock()
	if len(inv.redo) == 0 {
		inv.mu.Unlock()
		return ErrNothingToRedo
	}
	cmd := inv.redo[len(inv.redo)-1]
	inv.mu.Unlock()

	if err := cmd.Execute(ctx); err != nil {
		return err
	}

	inv.mu.Lock()
	inv.redo = inv.redo[:len(inv.redo)-1]
	inv.history = append(inv.history, cmd)
	inv.mu.Unlock()
	return nil
}

// HistoryLen returns the number of undoable commands.
func (inv *Invoker) HistoryLen() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.history)
}

// RedoLen returns the number of redoable commands.
func (inv *Invoker) RedoLen() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.redo)
}

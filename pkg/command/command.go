package command

import (
	"context"
	"errors"
)

var (
	// ErrNilExecute is returned when constructing a command without an
	// execute function.
	ErrNilExecute = errors.New("command: nil execute function")

	// ErrNotUndoable is returned when undoing a command that declared no
	// undo function.
	ErrNotUndoable = errors.New("command: not undoable")

	// ErrNothingToUndo is returned by Invoker.Undo on an empty history.
	ErrNothingToUndo = errors.New("command: nothing to undo")

	// ErrNothingToRedo is returned by Invoker.Redo on an empty redo stack.
	ErrNothingToRedo = errors.New("command: nothing to redo")

	// ErrQueueClosed is returned when submitting to a queue after Shutdown.
	ErrQueueClosed = errors.New("command: queue is closed")

	// ErrQueueFull is returned when the queue buffer cannot take another
	// command without blocking.
	ErrQueueFull = errors.New("command: queue is full")
)

// Command is an operation reified as a value.
type Command interface {
	Name() string
	Execute(ctx context.Context) error
	// Undo reverses a previously executed command. Commands that cannot be
	// reversed return ErrNotUndoable.
	Undo(ctx context.Context) error
}

type funcCommand struct {
	name    string
	execute func(ctx context.Context) error
	undo    func(ctx context.Context) error
}

// NewCommand builds a command from functions. The undo function may be nil
// for irreversible operations. Panics on a nil execute function.
func NewCommand(name string, execute, undo func(ctx context.Context) error) Command {
	if execute == nil {
		panic(ErrNilExecute)
	}
	return &funcCommand{name: name, execute: execute, undo: undo}
}

func (c *funcCommand) Name() string { return c.name }

func (c *funcCommand) Execute(ctx context.Context) error { return c.execute(ctx) }

func (c *funcCommand) Undo(ctx context.Context) error {
	if c.undo == nil {
		return ErrNotUndoable
	}
	return c.undo(ctx)
}

package command

import (
	"context"
	"errors"
	"fmt"
)

// macro composes commands into one transactional unit.
type macro struct {
	name string
	cmds []Command
}

// NewMacro bundles commands into a single command. Execute runs the members
// in order and, when one fails, undoes the already-executed prefix in
// reverse, so a failed macro leaves no partial effect behind. Undo reverses
// all members in reverse order.
func NewMacro(name string, cmds ...Command) Command {
	kept := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &macro{name: name, cmds: kept}
}

func (m *macro) Name() string { return m.name }

func (m *macro) Execute(ctx context.Context) error {
	for i, cmd := range m.cmds {
		if err := cmd.Execute(ctx); err != nil {
			// Roll back what already ran. Rollback failures are joined onto
			// the original error rather than swallowed.
			rollbackErr := m.undoRange(ctx, i-1)
			if rollbackErr != nil {
				return errors.Join(
					fmt.Errorf("command: macro %q failed at %q: %w", m.name, cmd.Name(), err),
					fmt.Errorf("command: rollback incomplete: %w", rollbackErr),
				)
			}
			return fmt.Errorf("command: macro %q failed at %q (rolled back): %w", m.name, cmd.Name(), err)
		}
	}
	return nil
}

func (m *macro) Undo(ctx context.Context) error {
	return m.undoRange(ctx, len(m.cmds)-1)
}

// undoRange undoes members [0..last] in reverse order, collecting errors.
func (m *macro) undoRange(ctx context.Context, last int) error {
	var errs []error
	for i := last; i >= 0; i-- {
		if err := m.cmds[i].Undo(ctx); err != nil && !errors.Is(err, ErrNotUndoable) {
			errs = append(errs, fmt.Errorf("undo %q: %w", m.cmds[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Package command implements the Command pattern: operations reified as
// values, so they can be queued, logged, undone, and composed like any other
// data.
//
// Command pairs Execute with Undo. Invoker runs commands and keeps the
// undo/redo history - the classic editor stack. Macro bundles commands into
// one, rolling back the already-executed prefix when a later member fails,
// which is the property that makes macros safe to expose to users. Queue is
// the asynchronous invoker: commands submitted to it are executed by a pool
// of workers, each submission tagged with a uuid for correlation with the
// structured log stream.
//
// # Usage
//
//	inv := command.NewInvoker()
//	err := inv.Do(ctx, command.NewCommand("rename",
//	    func(ctx context.Context) error { return fs.Rename(old, new) },
//	    func(ctx context.Context) error { return fs.Rename(new, old) },
//	))
//	...
//	err = inv.Undo(ctx)
//
// Asynchronous execution:
//
//	q := command.NewQueue(64, 4, command.WithQueueLogger(logger))
//	id, err := q.Submit(cmd)
//	...
//	err = q.Shutdown(ctx) // drains outstanding commands
package command

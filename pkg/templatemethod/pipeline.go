package templatemethod

import (
	"context"
	"fmt"
	"log/slog"
)

// Phase identifies one step of the fixed pipeline skeleton.
type Phase string

const (
	PhaseValidate  Phase = "validate"
	PhaseTransform Phase = "transform"
	PhasePersist   Phase = "persist"
	PhaseNotify    Phase = "notify"
)

// PhaseError tags a step failure with the phase that produced it.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("templatemethod: %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// Processor is the required contract: every pipeline implementation
// validates and persists.
type Processor[T any] interface {
	Validate(ctx context.Context, item T) error
	Persist(ctx context.Context, item T) error
}

// Transformer is an optional hook run between validation and persistence.
// It may return a modified copy of the item; the pipeline carries the
// returned value forward.
type Transformer[T any] interface {
	Transform(ctx context.Context, item T) (T, error)
}

// Notifier is an optional hook run after successful persistence.
type Notifier[T any] interface {
	Notify(ctx context.Context, item T) error
}

// Pipeline runs items through a fixed phase order. The skeleton lives
// here; implementations supply only the step bodies.
type Pipeline[T any] struct {
	proc   Processor[T]
	logger *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption[T any] func(*Pipeline[T])

// WithPipelineLogger sets the logger for phase tracing. Defaults to
// slog.Default().
func WithPipelineLogger[T any](logger *slog.Logger) PipelineOption[T] {
	return func(p *Pipeline[T]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a pipeline around proc. Panics on a nil processor.
func NewPipeline[T any](proc Processor[T], opts ...PipelineOption[T]) *Pipeline[T] {
	if proc == nil {
		panic("templatemethod: nil processor")
	}
	p := &Pipeline[T]{proc: proc, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Run executes the phases in order and returns the item as persisted.
// Optional hooks are discovered on the processor by type assertion; a
// missing hook skips its phase. The first failure stops the pipeline and
// is returned wrapped in a PhaseError.
func (p *Pipeline[T]) Run(ctx context.Context, item T) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	if err := p.proc.Validate(ctx, item); err != nil {
		return zero, &PhaseError{Phase: PhaseValidate, Err: err}
	}

	if tr, ok := p.proc.(Transformer[T]); ok {
		transformed, err := tr.Transform(ctx, item)
		if err != nil {
			return zero, &PhaseError{Phase: PhaseTransform, Err: err}
		}
		item = transformed
	}

	if err := p.proc.Persist(ctx, item); err != nil {
		return zero, &PhaseError{Phase: PhasePersist, Err: err}
	}

	if n, ok := p.proc.(Notifier[T]); ok {
		if err := n.Notify(ctx, item); err != nil {
			// The item is already persisted; report the failure without
			// undoing the write.
			p.logger.WarnContext(ctx, "notify phase failed after persist",
				slog.Any("error", err),
			)
			return item, &PhaseError{Phase: PhaseNotify, Err: err}
		}
	}

	p.logger.DebugContext(ctx, "pipeline completed")
	return item, nil
}

// RunAll processes items in order, stopping at the first failure and
// reporting how many were fully processed.
func (p *Pipeline[T]) RunAll(ctx context.Context, items []T) (processed int, err error) {
	for i, item := range items {
		if _, err := p.Run(ctx, item); err != nil {
			return i, fmt.Errorf("templatemethod: item %d: %w", i, err)
		}
	}
	return len(items), nil
}

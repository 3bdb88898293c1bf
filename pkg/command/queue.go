package command

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// task is a submitted command tagged for log correlation.
type task struct {
	id  uuid.UUID
	cmd Command
}

// Queue executes submitted commands asynchronously on a fixed worker pool.
// It is the invoker for fire-and-forget work: callers get a uuid back
// immediately and outcomes land in the structured log.
type Queue struct {
	tasks   chan task
	wg      sync.WaitGroup
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithQueueLogger sets the logger for command outcomes. Defaults to
// slog.Default().
func WithQueueLogger(logger *slog.Logger) QueueOption {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithExecTimeout bounds each command's execution. Zero (the default)
// means no per-command timeout.
func WithExecTimeout(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// NewQueue starts workers goroutines consuming a buffer-sized channel.
// Panics on non-positive sizes, since a queue that cannot hold or process
// work is a wiring mistake.
func NewQueue(buffer, workers int, opts ...QueueOption) *Queue {
	if buffer <= 0 || workers <= 0 {
		panic("command: queue buffer and worker count must be positive")
	}

	q := &Queue{
		tasks:  make(chan task, buffer),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(q)
		}
	}

	for range workers {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Submit enqueues a command and returns its correlation id. It fails fast
// with ErrQueueFull instead of blocking the caller, and with ErrQueueClosed
// after Shutdown.
func (q *Queue) Submit(cmd Command) (uuid.UUID, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return uuid.Nil, ErrQueueClosed
	}

	t := task{id: uuid.New(), cmd: cmd}
	select {
	case q.tasks <- t:
		return t.id, nil
	default:
		return uuid.Nil, ErrQueueFull
	}
}

// Shutdown stops intake and waits for in-flight and buffered commands to
// finish, or for the context to be cancelled, whichever comes first.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for t := range q.tasks {
		q.run(t)
	}
}

func (q *Queue) run(t task) {
	ctx := context.Background()
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	start := time.Now()
	err := t.cmd.Execute(ctx)
	if err != nil {
		q.logger.ErrorContext(ctx, "command failed",
			slog.String("command_id", t.id.String()),
			slog.String("command", t.cmd.Name()),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return
	}

	q.logger.InfoContext(ctx, "command executed",
		slog.String("command_id", t.id.String()),
		slog.String("command", t.cmd.Name()),
		slog.Duration("duration", time.Since(start)),
	)
}

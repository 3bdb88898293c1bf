package observer

import (
	"context"
	"sync"
	"sync/atomic"
)

// MemorySubject is an in-process Subject. Delivery is non-blocking: an
// observer whose buffer is full misses the event, and the miss is counted,
// but the observer stays attached. All methods are safe for concurrent use.
type MemorySubject[T any] struct {
	mu      sync.RWMutex
	subs    map[*subscription[T]]struct{}
	buffer  int
	closed  bool
	quit    chan struct{}
	dropped atomic.Int64
	reapWg  sync.WaitGroup
}

// NewMemorySubject creates a subject whose subscriptions buffer up to
// buffer events each. A minimum buffer of 1 is enforced, since an
// unbuffered channel would make every delivery a drop.
func NewMemorySubject[T any](buffer int) *MemorySubject[T] {
	return &MemorySubject[T]{
		subs:   make(map[*subscription[T]]struct{}),
		buffer: max(buffer, 1),
		quit:   make(chan struct{}),
	}
}

// Subscribe attaches an observer. When ctx is cancelled the subscription is
// detached and its channel closed. Subscribing to a closed subject returns
// an already-closed subscription.
func (s *MemorySubject[T]) Subscribe(ctx context.Context) Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := newSubscription[T](s.buffer)
	if s.closed {
		_ = sub.Close()
		return sub
	}
	s.subs[sub] = struct{}{}
	sub.onClose = func() { s.remove(sub) }

	if ctx.Done() != nil {
		s.reapWg.Add(1)
		go func() {
			defer s.reapWg.Done()
			select {
			case <-ctx.Done():
				s.detach(sub)
			case <-s.quit:
			}
		}()
	}
	return sub
}

// Publish delivers evt to every attached observer. Returns nil even when
// some observers missed the event; use Dropped to monitor misses.
func (s *MemorySubject[T]) Publish(_ context.Context, evt Event[T]) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil
	}
	for sub := range s.subs {
		if !sub.offer(evt) {
			s.dropped.Add(1)
		}
	}
	return nil
}

// Close detaches every observer and closes their channels. Idempotent.
func (s *MemorySubject[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.quit)
	subs := make([]*subscription[T], 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	clear(s.subs)
	s.mu.Unlock()

	// Closing outside the lock: each Close re-enters remove, which needs it.
	for _, sub := range subs {
		_ = sub.Close()
	}
	s.reapWg.Wait()
	return nil
}

// Observers returns the number of attached observers.
func (s *MemorySubject[T]) Observers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Dropped returns the total number of events missed by slow observers.
func (s *MemorySubject[T]) Dropped() int64 {
	return s.dropped.Load()
}

func (s *MemorySubject[T]) detach(sub *subscription[T]) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
	_ = sub.Close()
}

// remove drops a subscription that closed itself.
func (s *MemorySubject[T]) remove(sub *subscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, sub)
}

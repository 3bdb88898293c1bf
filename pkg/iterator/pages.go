package iterator

import (
	"context"
	"iter"
)

// FetchFunc retrieves one page of items. It receives the cursor returned by
// the previous call ("" for the first page) and returns the page, the cursor
// for the next one, and an error. An empty next cursor ends the traversal.
type FetchFunc[T any] func(ctx context.Context, cursor string) (items []T, next string, err error)

// Pager walks a paginated collection lazily: the next page is fetched only
// when the consumer has drained the current one. A Pager is single-use.
type Pager[T any] struct {
	fetch FetchFunc[T]
	err   error
}

// Pages creates a pager over fetch. Panics on a nil fetch function.
func Pages[T any](fetch FetchFunc[T]) *Pager[T] {
	if fetch == nil {
		panic("iterator: nil fetch function")
	}
	return &Pager[T]{fetch: fetch}
}

// All yields every item across all pages. Breaking out of the loop stops
// further fetches. After the loop finishes, Err reports whether it ended
// because of a fetch failure or context cancellation.
func (p *Pager[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		cursor := ""
		for {
			if err := ctx.Err(); err != nil {
				p.err = err
				return
			}

			items, next, err := p.fetch(ctx, cursor)
			if err != nil {
				p.err = err
				return
			}

			for _, v := range items {
				if !yield(v) {
					return
				}
			}

			if next == "" {
				return
			}
			cursor = next
		}
	}
}

// Err returns the error that terminated the last traversal, if any.
func (p *Pager[T]) Err() error {
	return p.err
}

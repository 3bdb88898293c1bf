// Package iterator provides lazy sequence traversal built on the standard
// iter.Seq protocol, so every helper here composes with range-over-func
// loops and the rest of the ecosystem.
//
// Slice and map sources:
//
//	for v := range iterator.FromSlice([]int{1, 2, 3}) {
//	    fmt.Println(v)
//	}
//
//	// FromMap yields entries in sorted key order for deterministic output.
//	for k, v := range iterator.FromMap(m) {
//	    fmt.Println(k, v)
//	}
//
// Sequences compose without materializing intermediate slices:
//
//	evens := iterator.Filter(iterator.FromSlice(nums), func(n int) bool { return n%2 == 0 })
//	firstTen := iterator.Take(evens, 10)
//	result := iterator.Collect(firstTen)
//
// Pages traverses a remote collection page by page, fetching lazily as the
// consumer advances. Breaking out of the loop stops fetching; fetch errors
// are surfaced through the Err method after the loop:
//
//	pages := iterator.Pages(func(ctx context.Context, cursor string) ([]User, string, error) {
//	    return client.ListUsers(ctx, cursor)
//	})
//	for u := range pages.All(ctx) {
//	    process(u)
//	}
//	if err := pages.Err(); err != nil {
//	    return err
//	}
package iterator

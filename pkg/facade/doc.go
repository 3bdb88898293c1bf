// Package facade implements the Facade pattern: a single entry point over
// several subsystems whose correct orchestration is easy to get wrong at
// every call site.
//
// The subject is order checkout. Placing an order means reserving stock,
// charging the customer, sending a confirmation, and leaving an audit trail -
// and unwinding the reservations when a later step fails. Checkout owns that
// sequence; callers get one method:
//
//	confirmation, err := checkout.PlaceOrder(ctx, order)
//
// The subsystems stay exported and fully usable on their own - a facade narrows
// the common path, it does not hide the building blocks. This package is also
// the catalog's one deliberate composition of sibling patterns: payments come
// from pkg/adapter and confirmations go out through pkg/bridge, because
// coordinating other components is precisely the facade's job.
package facade

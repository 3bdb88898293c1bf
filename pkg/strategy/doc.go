// Package strategy lets callers swap an algorithm at runtime without
// changing the code that invokes it. A strategy is a named, interchangeable
// computation; a selector holds a family of them and picks one by name.
//
//	flat := strategy.New("flat-500", func(_ context.Context, cart Cart) (int, error) {
//	    return cart.SubtotalCents - 500, nil
//	})
//
//	sel := strategy.NewSelector[Cart, int]()
//	err := sel.Register(flat)
//	total, err := sel.Apply(ctx, "flat-500", cart)
//
// Two ready-made families ship with the package:
//
//   - Pricing: FlatDiscount, PercentDiscount, and TieredDiscount compute a
//     cart total under different discount policies.
//   - Backoff: ConstantBackoff and ExponentialBackoff compute retry delays;
//     the exponential variant supports jitter to spread coordinated
//     retries.
//
// Strategies are stateless values: registering one does not copy or wrap
// it, and the same strategy may be registered with several selectors.
package strategy

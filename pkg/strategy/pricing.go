package strategy

import (
	"context"
	"errors"
	"sort"
)

// Cart is the input to pricing strategies. Amounts are in cents to keep
// money arithmetic exact.
type Cart struct {
	SubtotalCents int
	Quantity      int
}

// ErrNegativeSubtotal is returned by pricing strategies for carts with a
// negative subtotal.
var ErrNegativeSubtotal = errors.New("strategy: negative cart subtotal")

// FlatDiscount subtracts a fixed amount from the subtotal. The total never
// goes below zero.
func FlatDiscount(name string, offCents int) Strategy[Cart, int] {
	return New(name, func(_ context.Context, cart Cart) (int, error) {
		if cart.SubtotalCents < 0 {
			return 0, ErrNegativeSubtotal
		}
		return max(cart.SubtotalCents-offCents, 0), nil
	})
}

// PercentDiscount subtracts a percentage expressed in basis points
// (100 bps = 1%). Panics on bps outside [0, 10000].
func PercentDiscount(name string, bps int) Strategy[Cart, int] {
	if bps < 0 || bps > 10000 {
		panic("strategy: discount basis points must be in [0, 10000]")
	}
	return New(name, func(_ context.Context, cart Cart) (int, error) {
		if cart.SubtotalCents < 0 {
			return 0, ErrNegativeSubtotal
		}
		discount := cart.SubtotalCents * bps / 10000
		return cart.SubtotalCents - discount, nil
	})
}

// Tier maps a minimum quantity to a discount in basis points.
type Tier struct {
	MinQuantity int
	Bps         int
}

// TieredDiscount applies the discount of the highest tier the cart's
// quantity reaches. Carts below every tier pay full price.
func TieredDiscount(name string, tiers ...Tier) Strategy[Cart, int] {
	sorted := append([]Tier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity < sorted[j].MinQuantity
	})

	return New(name, func(_ context.Context, cart Cart) (int, error) {
		if cart.SubtotalCents < 0 {
			return 0, ErrNegativeSubtotal
		}
		bps := 0
		for _, tier := range sorted {
			if cart.Quantity >= tier.MinQuantity {
				bps = tier.Bps
			}
		}
		discount := cart.SubtotalCents * bps / 10000
		return cart.SubtotalCents - discount, nil
	})
}

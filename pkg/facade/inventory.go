package facade

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Inventory is the stock subsystem the facade coordinates.
type Inventory interface {
	Reserve(ctx context.Context, sku string, qty int) error
	Release(ctx context.Context, sku string, qty int) error
}

// OutOfStockError reports a reservation that exceeds available stock.
type OutOfStockError struct {
	SKU       string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("facade: sku %q out of stock (requested %d, available %d)", e.SKU, e.Requested, e.Available)
}

func IsOutOfStockError(err error) bool {
	var e *OutOfStockError
	return errors.As(err, &e)
}

// MemoryInventory is an in-memory Inventory for tests and examples.
type MemoryInventory struct {
	mu    sync.Mutex
	stock map[string]int
}

// NewMemoryInventory creates an inventory seeded with the given stock levels.
func NewMemoryInventory(stock map[string]int) *MemoryInventory {
	inv := &MemoryInventory{stock: make(map[string]int, len(stock))}
	for sku, qty := range stock {
		inv.stock[sku] = qty
	}
	return inv
}

func (inv *MemoryInventory) Reserve(ctx context.Context, sku string, qty int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	available := inv.stock[sku]
	if available < qty {
		return &OutOfStockError{SKU: sku, Requested: qty, Available: available}
	}
	inv.stock[sku] = available - qty
	return nil
}

func (inv *MemoryInventory) Release(ctx context.Context, sku string, qty int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.stock[sku] += qty
	return nil
}

// Stock reports the current available quantity for a SKU.
func (inv *MemoryInventory) Stock(sku string) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.stock[sku]
}

package facade

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/patternkit/pkg/adapter"
	"github.com/dmitrymomot/patternkit/pkg/bridge"
)

// Item is one order line.
type Item struct {
	SKU        string
	Qty        int
	PriceCents int64
}

// Order is the facade's input.
type Order struct {
	CustomerID string
	Email      string
	Items      []Item
}

// TotalCents returns the order total.
func (o Order) TotalCents() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.PriceCents * int64(it.Qty)
	}
	return total
}

// Confirmation is the facade's output for a successfully placed order.
type Confirmation struct {
	OrderID       uuid.UUID
	TransactionID string
	TotalCents    int64
}

var (
	// ErrEmptyOrder is returned for orders with no items.
	ErrEmptyOrder = errors.New("facade: order has no items")
)

// Notifier is the confirmation channel. Both bridge.Notifier and
// bridge.UrgentNotifier satisfy it.
type Notifier interface {
	Notify(ctx context.Context, msg bridge.Message) error
}

// Checkout is the facade: one method coordinating inventory, payments,
// notification, and audit logging.
type Checkout struct {
	payments  adapter.PaymentProcessor
	inventory Inventory
	notifier  Notifier
	logger    *slog.Logger
}

// Option configures a Checkout.
type Option func(*Checkout)

// WithLogger sets the audit logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checkout) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates the checkout facade. All three subsystems are required; a nil
// subsystem panics at wiring time rather than at the first order.
func New(payments adapter.PaymentProcessor, inventory Inventory, notifier Notifier, opts ...Option) *Checkout {
	if payments == nil || inventory == nil || notifier == nil {
		panic("facade: nil subsystem")
	}
	c := &Checkout{
		payments:  payments,
		inventory: inventory,
		notifier:  notifier,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// PlaceOrder runs the full checkout sequence: reserve every line, charge the
// total, send the confirmation, log the audit trail. Reservations made before
// a failure are released, so a failed order leaves stock untouched. The
// confirmation email is best effort: its failure is logged, not returned.
func (c *Checkout) PlaceOrder(ctx context.Context, order Order) (Confirmation, error) {
	if len(order.Items) == 0 {
		return Confirmation{}, ErrEmptyOrder
	}

	orderID := uuid.New()
	log := c.logger.With(
		slog.String("order_id", orderID.String()),
		slog.String("customer_id", order.CustomerID),
	)

	reserved := make([]Item, 0, len(order.Items))
	release := func() {
		for _, it := range reserved {
			if err := c.inventory.Release(ctx, it.SKU, it.Qty); err != nil {
				log.ErrorContext(ctx, "failed to release reservation",
					slog.String("sku", it.SKU),
					slog.Any("error", err),
				)
			}
		}
	}

	for _, it := range order.Items {
		if err := c.inventory.Reserve(ctx, it.SKU, it.Qty); err != nil {
			release()
			return Confirmation{}, fmt.Errorf("facade: reserve %q: %w", it.SKU, err)
		}
		reserved = append(reserved, it)
	}

	total := order.TotalCents()
	receipt, err := c.payments.Charge(ctx, adapter.Charge{
		CustomerID:  order.CustomerID,
		AmountCents: total,
		Currency:    "USD",
	})
	if err != nil {
		release()
		return Confirmation{}, fmt.Errorf("facade: charge: %w", err)
	}

	// Payment captured: the order stands even if the confirmation fails.
	msg := bridge.Message{
		To:      order.Email,
		Subject: fmt.Sprintf("Order %s confirmed", orderID),
		Body:    fmt.Sprintf("Charged %d cents, transaction %s.", total, receipt.TransactionID),
	}
	if err := c.notifier.Notify(ctx, msg); err != nil {
		log.WarnContext(ctx, "confirmation not delivered", slog.Any("error", err))
	}

	log.InfoContext(ctx, "order placed",
		slog.String("transaction_id", receipt.TransactionID),
		slog.Int64("total_cents", total),
		slog.Int("lines", len(order.Items)),
	)

	return Confirmation{
		OrderID:       orderID,
		TransactionID: receipt.TransactionID,
		TotalCents:    total,
	}, nil
}

package adapter

import (
	"context"
	"errors"
	"fmt"
)

// Charge describes a payment request in the modern API's terms: integer
// cents, explicit currency.
type Charge struct {
	CustomerID  string
	AmountCents int64
	Currency    string
}

// Receipt is the result of a successful charge.
type Receipt struct {
	TransactionID string
	AmountCents   int64
	Currency      string
}

// PaymentProcessor is the target interface the rest of the codebase depends
// on. Implementations must honor context cancellation and report failures as
// typed errors.
type PaymentProcessor interface {
	Charge(ctx context.Context, c Charge) (Receipt, error)
	Refund(ctx context.Context, transactionID string, amountCents int64) error
}

var (
	// ErrInvalidAmount is returned for zero or negative charge amounts.
	ErrInvalidAmount = errors.New("adapter: amount must be positive")

	// ErrUnsupportedCurrency is returned for currencies the gateway cannot settle.
	ErrUnsupportedCurrency = errors.New("adapter: unsupported currency")

	// ErrInsufficientFunds is returned when the customer's balance cannot cover the charge.
	ErrInsufficientFunds = errors.New("adapter: insufficient funds")

	// ErrUnknownCustomer is returned for customers the gateway has never seen.
	ErrUnknownCustomer = errors.New("adapter: unknown customer")

	// ErrUnknownTransaction is returned when refunding a transaction that does not exist.
	ErrUnknownTransaction = errors.New("adapter: unknown transaction")
)

// GatewayError is returned when the legacy gateway reports a status code the
// adapter has no mapping for. It preserves the raw code for diagnostics.
type GatewayError struct {
	Code int
	Op   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("adapter: legacy gateway returned status %d during %s", e.Code, e.Op)
}

func IsGatewayError(err error) bool {
	var e *GatewayError
	return errors.As(err, &e)
}

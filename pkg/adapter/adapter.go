package adapter

import (
	"context"
	"strings"
)

// LegacyGatewayAdapter implements PaymentProcessor on top of LegacyGateway.
// All impedance mismatch between the two APIs lives here: cents to dollars,
// status codes to errors, context checks the legacy side cannot do.
type LegacyGatewayAdapter struct {
	gw *LegacyGateway
}

// NewLegacyGatewayAdapter wraps a legacy gateway. Panics on a nil gateway.
func NewLegacyGatewayAdapter(gw *LegacyGateway) *LegacyGatewayAdapter {
	if gw == nil {
		panic("adapter: nil legacy gateway")
	}
	return &LegacyGatewayAdapter{gw: gw}
}

// Charge validates the request, converts units, and translates the gateway's
// status code into a typed error.
func (a *LegacyGatewayAdapter) Charge(ctx context.Context, c Charge) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if c.AmountCents <= 0 {
		return Receipt{}, ErrInvalidAmount
	}
	if !strings.EqualFold(c.Currency, "USD") {
		return Receipt{}, ErrUnsupportedCurrency
	}

	ref, status := a.gw.MakePayment(c.CustomerID, centsToDollars(c.AmountCents))
	if err := mapStatus(status, "charge"); err != nil {
		return Receipt{}, err
	}

	return Receipt{
		TransactionID: ref,
		AmountCents:   c.AmountCents,
		Currency:      "USD",
	}, nil
}

// Refund reverses up to the captured amount of a previous charge.
func (a *LegacyGatewayAdapter) Refund(ctx context.Context, transactionID string, amountCents int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amountCents <= 0 {
		return ErrInvalidAmount
	}

	status := a.gw.ReversePayment(transactionID, centsToDollars(amountCents))
	return mapStatus(status, "refund")
}

func mapStatus(status int, op string) error {
	switch status {
	case legacyStatusOK:
		return nil
	case legacyStatusInsufficientFunds:
		return ErrInsufficientFunds
	case legacyStatusUnknownCustomer:
		return ErrUnknownCustomer
	case legacyStatusUnknownRef:
		return ErrUnknownTransaction
	case legacyStatusOverRefund:
		return ErrInvalidAmount
	default:
		return &GatewayError{Code: status, Op: op}
	}
}

func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

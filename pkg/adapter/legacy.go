package adapter

import (
	"sync"

	"github.com/google/uuid"
)

// Legacy gateway status codes. The gateway predates error values; every
// outcome is a number.
const (
	legacyStatusOK                = 0
	legacyStatusInsufficientFunds = 1
	legacyStatusUnknownCustomer   = 2
	legacyStatusUnknownRef        = 3
	legacyStatusOverRefund        = 4
)

// LegacyGateway mimics the old payment system's API surface: float dollars,
// numeric statuses, no context. It keeps account balances and captured
// payments in memory so the adapter has real behavior to translate.
type LegacyGateway struct {
	mu       sync.Mutex
	balances map[string]float64
	captured map[string]capturedPayment
}

type capturedPayment struct {
	customerRef string
	dollars     float64
	refunded    float64
}

// NewLegacyGateway creates an empty gateway. Seed accounts with LoadAccount
// before charging them.
func NewLegacyGateway() *LegacyGateway {
	return &LegacyGateway{
		balances: make(map[string]float64),
		captured: make(map[string]capturedPayment),
	}
}

// LoadAccount registers a customer with an opening balance in dollars.
func (g *LegacyGateway) LoadAccount(customerRef string, dollars float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balances[customerRef] = dollars
}

// MakePayment captures a payment and returns a reference and a status code.
func (g *LegacyGateway) MakePayment(customerRef string, dollars float64) (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	balance, ok := g.balances[customerRef]
	if !ok {
		return "", legacyStatusUnknownCustomer
	}
	if balance < dollars {
		return "", legacyStatusInsufficientFunds
	}

	g.balances[customerRef] = balance - dollars
	ref := uuid.NewString()
	g.captured[ref] = capturedPayment{customerRef: customerRef, dollars: dollars}
	return ref, legacyStatusOK
}

// ReversePayment refunds up to the captured amount and returns a status code.
func (g *LegacyGateway) ReversePayment(ref string, dollars float64) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	payment, ok := g.captured[ref]
	if !ok {
		return legacyStatusUnknownRef
	}
	if payment.refunded+dollars > payment.dollars {
		return legacyStatusOverRefund
	}

	payment.refunded += dollars
	g.captured[ref] = payment
	g.balances[payment.customerRef] += dollars
	return legacyStatusOK
}

// Balance reports a customer's current balance in dollars.
func (g *LegacyGateway) Balance(customerRef string) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.balances[customerRef]
}

// Package adapter implements the Adapter pattern: translating an existing,
// incompatible API into the interface a caller expects, without touching
// either side.
//
// The worked example is payments. The modern side of the codebase speaks
// PaymentProcessor: money in integer cents, context-aware methods, errors as
// values. The legacy gateway predates all of that - float dollars, no
// context, numeric status codes instead of errors. LegacyGatewayAdapter sits
// between the two and owns every translation rule: unit conversion, status
// code to typed error mapping, context cancellation checks the legacy API
// cannot perform itself.
//
// Keeping the translation in one type has a practical payoff beyond pattern
// aesthetics: when the legacy gateway is finally retired, the adapter is the
// only file that dies.
//
// # Usage
//
//	gw := adapter.NewLegacyGateway()
//	var p adapter.PaymentProcessor = adapter.NewLegacyGatewayAdapter(gw)
//
//	receipt, err := p.Charge(ctx, adapter.Charge{
//	    CustomerID:  "cus_123",
//	    AmountCents: 1999,
//	    Currency:    "USD",
//	})
//
// The package also ships the ambient-stack flavor of the same pattern:
// NewSlogPrinter adapts a *slog.Logger onto the Printf-style Printer
// interface that older subsystems expect.
package adapter

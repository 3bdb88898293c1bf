// Package factory implements the Factory Method pattern as a type-safe
// constructor registry.
//
// The pattern defers the decision of which concrete type to create to
// runtime, keeping callers coupled only to an interface. In Go the natural
// shape is a registry mapping names to constructor functions: packages
// register their constructors (often from init or during wiring), and the
// call site asks for a product by name, usually a name that arrived from
// configuration.
//
// # Usage
//
//	reg := factory.NewRegistry[Transport]()
//	reg.MustRegister("email", func() (Transport, error) { return NewEmail(cfg), nil })
//	reg.MustRegister("sms", func() (Transport, error) { return NewSMS(cfg), nil })
//
//	transport, err := reg.New(cfg.TransportName)
//
// Registration conflicts and unknown names are reported with typed errors so
// wiring mistakes surface with the offending name attached. Names returns a
// sorted snapshot, convenient for "valid values are ..." error messages and
// CLI help output.
//
// # Thread Safety
//
// A Registry is safe for concurrent use. The usual pattern is to complete
// registration during startup and treat the registry as read-only afterward,
// but late registration is not forbidden.
package factory

// Package bridge implements the Bridge pattern: an abstraction and its
// implementation evolve independently, connected only by composition.
//
// The subject is notification delivery. The abstraction side is how a message
// is shaped - a plain Notifier versus an UrgentNotifier that prefixes,
// escalates, and fans out retries. The implementation side is how bytes leave
// the process - Transport, with email-like, sms-like, and slog-backed
// variants. Without the bridge these two axes multiply (UrgentEmailNotifier,
// UrgentSMSNotifier, PlainEmailNotifier, ...); with it each axis grows
// linearly and any notifier drives any transport.
//
// # Usage
//
//	n := bridge.NewNotifier(bridge.NewLogTransport(logger))
//	err := n.Notify(ctx, bridge.Message{To: "ops@example.com", Subject: "disk", Body: "87% full"})
//
//	urgent := bridge.NewUrgentNotifier(bridge.NewEmailTransport(smtpAddr), bridge.WithRetries(2))
//	err = urgent.Notify(ctx, msg)
//
// Transports honor context cancellation; notifiers never inspect which
// transport they hold.
package bridge

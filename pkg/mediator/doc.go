// Package mediator decouples components that need to talk to each other by
// routing messages through a central hub instead of direct references.
// Components register handlers for topics; senders address a topic, never a
// peer, so adding or removing a participant touches one registration and no
// other component.
//
// Usage:
//
//	m := mediator.New()
//	err := m.Register("order.created", func(ctx context.Context, msg any) error {
//	    order := msg.(Order)
//	    return warehouse.Reserve(ctx, order)
//	})
//	err = m.Send(ctx, "order.created", order)
//
// Send delivers to every handler registered for the topic, in registration
// order, and stops at the first failure. Sending to a topic with no
// handlers returns NoHandlerError so misrouted messages fail loudly rather
// than disappear.
//
// Room is a worked chat-room example built on the hub: participants join a
// room and broadcast to everyone but themselves through the mediator.
package mediator

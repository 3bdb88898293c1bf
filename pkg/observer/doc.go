// Package observer implements publish/subscribe state notification: a
// subject pushes events to every registered observer without knowing who
// they are, and observers come and go without the subject changing.
//
// Subscriptions are channel-based and context-scoped:
//
//	subject := observer.NewMemorySubject[OrderEvent](16)
//	defer subject.Close()
//
//	sub := subject.Subscribe(ctx)
//	go func() {
//	    for evt := range sub.Events(ctx) {
//	        handle(evt.Payload)
//	    }
//	}()
//
//	err := subject.Publish(ctx, observer.NewEvent("order.paid", order))
//
// Publish never blocks on a slow observer: when a subscription's buffer is
// full the event is dropped for that subscriber and delivery to the rest
// continues. Cancelling the subscription context tears the subscription
// down automatically.
//
// RedisSubject carries the same contract across processes over Redis
// pub/sub, serializing events as JSON. Observers on other machines receive
// through the identical Subscription interface, so local and distributed
// wiring are interchangeable.
package observer

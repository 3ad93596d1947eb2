package ports

import (
	"context"

	"mealdrop/internal/core/domain/model/events"
)

// DefaultTopic is the topic used when a publisher or subscriber does not
// care about topic separation.
const DefaultTopic = "default"

// EventHandler consumes one domain event. Handlers run synchronously on the
// publisher's goroutine and must not block.
type EventHandler func(ctx context.Context, event events.DomainEvent)

// Subscription is a handle to an active event subscription.
type Subscription interface {
	// Unsubscribe detaches the handler. Safe to call more than once.
	Unsubscribe()
}

// EventPublisher delivers committed domain events to current subscribers.
// Publishing has no memory: subscribers registered later never see earlier
// events.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, evts ...events.DomainEvent)
}

// EventSubscriber registers handlers for domain events on a (topic, kind)
// key.
type EventSubscriber interface {
	// Subscribe registers a handler for one event kind on a topic.
	Subscribe(topic string, kind events.Kind, handler EventHandler) Subscription

	// SubscribeAll registers a handler for every listed kind on a topic.
	// The returned subscription detaches all of them at once.
	SubscribeAll(topic string, kinds []events.Kind, handler EventHandler) Subscription
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

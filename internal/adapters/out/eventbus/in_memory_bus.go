// Package eventbus provides the in-process event bus backing domain event
// notifications.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"mealdrop/internal/core/domain/model/events"
	"mealdrop/internal/core/ports"
)

type subscriptionKey struct {
	topic string
	kind  events.Kind
}

type subscriberEntry struct {
	id      uint64
	handler ports.EventHandler
}

// InMemoryBus is a synchronous in-process event bus. Subscriptions key on
// (topic, event kind) pairs; publishing an event invokes every handler
// currently registered for its key, in registration order, on the caller's
// goroutine. Events published with no subscribers are dropped; there is no
// replay.
type InMemoryBus struct {
	mu          sync.RWMutex
	subscribers map[subscriptionKey][]subscriberEntry
	nextID      uint64

	published interface{ Inc() }
	logger    *slog.Logger
}

// Option configures an InMemoryBus.
type Option func(*InMemoryBus)

// WithPublishedCounter wires a counter incremented once per published event.
func WithPublishedCounter(counter interface{ Inc() }) Option {
	return func(b *InMemoryBus) {
		b.published = counter
	}
}

// NewInMemoryBus creates an empty bus.
func NewInMemoryBus(logger *slog.Logger, opts ...Option) *InMemoryBus {
	b := &InMemoryBus{
		subscribers: make(map[subscriptionKey][]subscriberEntry),
		logger:      logger.With("component", "event_bus"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers each event to the handlers subscribed to its
// (topic, kind) key. The subscriber list is snapshotted before invocation,
// so handlers that unsubscribe mid-publish still receive the in-flight
// event.
func (b *InMemoryBus) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) {
	for _, event := range evts {
		b.mu.RLock()
		entries := b.subscribers[subscriptionKey{topic: topic, kind: event.Kind()}]
		snapshot := make([]subscriberEntry, len(entries))
		copy(snapshot, entries)
		b.mu.RUnlock()

		for _, entry := range snapshot {
			entry.handler(ctx, event)
		}

		if b.published != nil {
			b.published.Inc()
		}
		b.logger.DebugContext(ctx, "event published",
			"topic", topic, "kind", string(event.Kind()), "subscribers", len(snapshot))
	}
}

// Subscribe registers a handler for one event kind on a topic.
func (b *InMemoryBus) Subscribe(topic string, kind events.Kind, handler ports.EventHandler) ports.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	key := subscriptionKey{topic: topic, kind: kind}
	b.subscribers[key] = append(b.subscribers[key], subscriberEntry{id: id, handler: handler})

	return &subscription{bus: b, entries: []entryRef{{key: key, id: id}}}
}

// SubscribeAll registers a handler for every listed kind on a topic.
func (b *InMemoryBus) SubscribeAll(topic string, kinds []events.Kind, handler ports.EventHandler) ports.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	refs := make([]entryRef, 0, len(kinds))
	for _, kind := range kinds {
		b.nextID++
		id := b.nextID
		key := subscriptionKey{topic: topic, kind: kind}
		b.subscribers[key] = append(b.subscribers[key], subscriberEntry{id: id, handler: handler})
		refs = append(refs, entryRef{key: key, id: id})
	}

	return &subscription{bus: b, entries: refs}
}

func (b *InMemoryBus) remove(ref entryRef) {
	entries := b.subscribers[ref.key]
	for i, entry := range entries {
		if entry.id == ref.id {
			b.subscribers[ref.key] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(b.subscribers[ref.key]) == 0 {
		delete(b.subscribers, ref.key)
	}
}

type entryRef struct {
	key subscriptionKey
	id  uint64
}

type subscription struct {
	bus     *InMemoryBus
	once    sync.Once
	entries []entryRef
}

// Unsubscribe detaches every handler registered by the subscription.
// Subsequent calls are no-ops.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		for _, ref := range s.entries {
			s.bus.remove(ref)
		}
	})
}

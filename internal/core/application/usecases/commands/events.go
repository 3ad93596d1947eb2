package commands

import (
	"context"

	"mealdrop/internal/core/domain/model/events"
	"mealdrop/internal/core/ports"
)

// eventSource is satisfied by aggregates that accumulate pending domain
// events.
type eventSource interface {
	Events() []events.DomainEvent
	ClearEvents()
}

// publishEvents drains the pending events of each aggregate to the publisher.
// Handlers call it only after a successful commit, so subscribers never
// observe events for state that was rolled back. A nil publisher disables
// publication.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, sources ...eventSource) {
	if publisher == nil {
		return
	}
	for _, source := range sources {
		pending := source.Events()
		if len(pending) == 0 {
			continue
		}
		publisher.Publish(ctx, ports.DefaultTopic, pending...)
		source.ClearEvents()
	}
}

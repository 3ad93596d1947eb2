// Package metrics declares the Prometheus instruments exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service counters. Both satisfy the Inc-only interfaces
// the application layer accepts, keeping Prometheus out of the core.
type Metrics struct {
	// RejectRetries counts rejection attempts replayed after an optimistic
	// concurrency conflict.
	RejectRetries prometheus.Counter

	// PublishedEvents counts domain events delivered to the event bus.
	PublishedEvents prometheus.Counter
}

// New registers all service counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RejectRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mealdrop",
			Name:      "delivery_request_reject_retries_total",
			Help:      "Rejection attempts replayed after a concurrency conflict.",
		}),
		PublishedEvents: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mealdrop",
			Name:      "domain_events_published_total",
			Help:      "Domain events delivered to the in-process event bus.",
		}),
	}
}

package services

import (
	"errors"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/order"
)

// ErrNoCourierAvailable is returned when no courier can be offered the order.
// This occurs when no candidates are provided or none of them is on shift.
var ErrNoCourierAvailable = errors.New("no courier available for dispatch")

// CourierWorkload pairs a courier with the deliveries currently on their
// plate: accepted orders not yet dropped off plus unanswered requests.
type CourierWorkload struct {
	Courier *courier.Courier
	Load    int
}

// OrderDispatcher is a domain service that picks which courier an order
// should be offered to.
//
// Business rules:
//   - The order must still be up for grabs (placed, no courier).
//   - Only couriers on shift are considered.
//   - The least loaded candidate wins; ties go to the courier with the
//     freshest location report, so stale ones sink to the back.
//
// The dispatcher only selects. Creating the delivery request, and thus
// actually offering the order, is the caller's job.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// SelectCourier picks the best candidate for the order, or
// ErrNoCourierAvailable when nobody qualifies.
func (OrderDispatcher) SelectCourier(o *order.Order, candidates []CourierWorkload) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.StatusPlaced {
		return nil, order.ErrInvalidTransition
	}

	var best *CourierWorkload
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.Courier == nil || !candidate.Courier.OnShift() {
			continue
		}

		if best == nil || candidate.Load < best.Load ||
			(candidate.Load == best.Load && fresherLocation(candidate.Courier, best.Courier)) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrNoCourierAvailable
	}

	return best.Courier, nil
}

// fresherLocation reports whether a's location report is newer than b's.
// A courier without any report is never fresher.
func fresherLocation(a *courier.Courier, b *courier.Courier) bool {
	if a.Location() == nil {
		return false
	}
	if b.Location() == nil {
		return true
	}
	return a.Location().ObservedAt().After(b.Location().ObservedAt())
}

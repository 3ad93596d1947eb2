// Package events defines the domain events emitted by the order and courier
// aggregates. Events form a tagged union: every event carries a Kind
// discriminant, and subscription keys on the event bus are (topic, kind)
// pairs, so dispatch needs no reflection.
//
// An event is an immutable fact about a committed state change. Payloads
// carry the minimal identifiers a subscriber needs to react without
// re-querying aggregate internals. Aggregates accumulate events in a
// transient pending list; the application service publishes them only after
// the owning unit of work commits.
package events

import (
	"mealdrop/internal/core/domain/model/kernel"
)

// Kind is the discriminant of the domain-event union.
type Kind string

// All publishable event kinds.
const (
	KindOrderPlaced              Kind = "OrderPlaced"
	KindOrderAssigned            Kind = "OrderAssigned"
	KindOrderPreparationStarted  Kind = "OrderPreparationStarted"
	KindOrderPreparationFinished Kind = "OrderPreparationFinished"
	KindOrderPickedUp            Kind = "OrderPickedUp"
	KindOrderDelivered           Kind = "OrderDelivered"
	KindCourierAdded             Kind = "CourierAdded"
	KindCourierShiftStarted      Kind = "CourierShiftStarted"
	KindCourierShiftStopped      Kind = "CourierShiftStopped"
	KindCourierLocationUpdated   Kind = "CourierLocationUpdated"
)

// PublishableKinds lists every event kind forwarded to external notification
// transports. Order matters only for readability.
func PublishableKinds() []Kind {
	return []Kind{
		KindOrderPlaced,
		KindOrderAssigned,
		KindOrderPreparationStarted,
		KindOrderPreparationFinished,
		KindOrderPickedUp,
		KindOrderDelivered,
		KindCourierAdded,
		KindCourierShiftStarted,
		KindCourierShiftStopped,
		KindCourierLocationUpdated,
	}
}

// DomainEvent is implemented by every concrete event in this package.
type DomainEvent interface {
	Kind() Kind
}

// OrderPlaced signals that a customer checkout created a new order.
type OrderPlaced struct {
	OrderID      kernel.UUID `json:"orderId"`
	CustomerID   kernel.UUID `json:"customerId"`
	RestaurantID kernel.UUID `json:"restaurantId"`
}

func (OrderPlaced) Kind() Kind { return KindOrderPlaced }

// OrderAssigned signals that a courier accepted the delivery of an order.
type OrderAssigned struct {
	OrderID   kernel.UUID `json:"orderId"`
	CourierID kernel.UUID `json:"courierId"`
}

func (OrderAssigned) Kind() Kind { return KindOrderAssigned }

// OrderPreparationStarted signals that the restaurant started preparing an order.
type OrderPreparationStarted struct {
	OrderID kernel.UUID `json:"orderId"`
}

func (OrderPreparationStarted) Kind() Kind { return KindOrderPreparationStarted }

// OrderPreparationFinished signals that the restaurant finished preparing an order.
type OrderPreparationFinished struct {
	OrderID kernel.UUID `json:"orderId"`
}

func (OrderPreparationFinished) Kind() Kind { return KindOrderPreparationFinished }

// OrderPickedUp signals that the assigned courier collected the order.
type OrderPickedUp struct {
	OrderID   kernel.UUID `json:"orderId"`
	CourierID kernel.UUID `json:"courierId"`
}

func (OrderPickedUp) Kind() Kind { return KindOrderPickedUp }

// OrderDelivered signals that the assigned courier completed the delivery.
type OrderDelivered struct {
	OrderID   kernel.UUID `json:"orderId"`
	CourierID kernel.UUID `json:"courierId"`
}

func (OrderDelivered) Kind() Kind { return KindOrderDelivered }

// CourierAdded signals that a new courier was registered.
type CourierAdded struct {
	CourierID kernel.UUID `json:"courierId"`
	AccountID kernel.UUID `json:"accountId"`
	FullName  string      `json:"fullName"`
}

func (CourierAdded) Kind() Kind { return KindCourierAdded }

// CourierShiftStarted signals that a courier went on shift.
type CourierShiftStarted struct {
	CourierID kernel.UUID `json:"courierId"`
}

func (CourierShiftStarted) Kind() Kind { return KindCourierShiftStarted }

// CourierShiftStopped signals that a courier went off shift.
// Orders already accepted by the courier stay assigned.
type CourierShiftStopped struct {
	CourierID kernel.UUID `json:"courierId"`
}

func (CourierShiftStopped) Kind() Kind { return KindCourierShiftStopped }

// CourierLocationUpdated signals a fresh location sample for a courier.
type CourierLocationUpdated struct {
	CourierID kernel.UUID     `json:"courierId"`
	Position  kernel.GeoPoint `json:"position"`
}

func (CourierLocationUpdated) Kind() Kind { return KindCourierLocationUpdated }

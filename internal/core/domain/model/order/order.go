package order

import (
	"errors"
	"fmt"
	"slices"

	"mealdrop/internal/core/domain/model/events"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/errs"
	"mealdrop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNotAssignedToCourier is returned when a courier tries to confirm a
	// pickup or dropoff for an order assigned to somebody else (or to nobody).
	ErrNotAssignedToCourier = errors.New("order is not assigned to this courier")

	// ErrDeliveryAddressIsRequired is returned when an order carries no delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")

	// ErrItemsAreRequired is returned when an order carries no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the delivery lifecycle. It owns two
// orthogonal state tracks: the courier track (Placed/Assigned/PickedUp/
// Delivered) and the restaurant-owned preparation track (NotStarted/Active/
// Completed). Customer, restaurant, and courier are referenced by identity
// only; there is no cross-aggregate object graph.
//
// Every mutator appends domain events to a transient pending list and never
// publishes them itself. The application service publishes pending events
// after the unit of work commits, so an event is only ever observed for a
// state change that was durably persisted.
//
// The version field supports optimistic concurrency: repositories reject a
// save when the persisted version no longer matches the one read.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	items           []Item
	status          Status
	preparation     PreparationStatus
	courierID       *kernel.UUID
	version         int64

	pendingEvents []events.DomainEvent
	guard         guard.ConstructorGuard
}

// NewOrder creates an order from an approved checkout. This is the sole
// creation path for orders: status initializes to Placed, the preparation
// track to NotStarted, and an OrderPlaced event is raised.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:      StatusPlaced,
		preparation: PreparationNotStarted,
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.raise(events.OrderPlaced{
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
	})

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage without raising
// events. All invariants are revalidated, including the consistency between
// status and courier assignment.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	items []Item,
	status Status,
	preparation PreparationStatus,
	courierID *kernel.UUID,
	version int64,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setStatus(status),
		o.setPreparation(preparation),
		o.setCourierID(courierID),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := o.validateCourierConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks that the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identity of the preparing restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the order lines in checkout order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalAmount returns the order total in minor currency units.
// Always recomputed from the items so it cannot drift from them.
func (o *Order) TotalAmount() int64 {
	var total int64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

// Status returns the courier-track status.
func (o *Order) Status() Status {
	return o.status
}

// PreparationStatus returns the restaurant-track status.
func (o *Order) PreparationStatus() PreparationStatus {
	return o.preparation
}

// CourierID returns the assigned courier's identity, or nil when unassigned.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// Version returns the optimistic-concurrency version read from storage.
func (o *Order) Version() int64 {
	return o.version
}

// AcceptDeliveryRequest assigns the order to the accepting courier.
// Valid only while the order is Placed; an order already assigned (to this
// or any other courier) fails with ErrInvalidTransition. Raises OrderAssigned.
//
// The caller is responsible for resolving the matching delivery request in
// the same unit of work.
func (o *Order) AcceptDeliveryRequest(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.raise(events.OrderAssigned{OrderID: o.id, CourierID: courierID})
	return nil
}

// RejectDeliveryRequest returns the order to a reassignable state after the
// given courier declined. While Placed it is a no-op (there is nothing to
// clear). While Assigned to the same courier it releases the order back to
// Placed and clears the assignment, so the courier can back out after
// acceptance. Rejecting an order assigned to a different courier, or one
// that progressed to PickedUp or Delivered, fails with ErrInvalidTransition.
//
// No dedicated "unassigned" event is raised; only the delivery request
// transitions. Reassignment is re-triggered externally.
func (o *Order) RejectDeliveryRequest(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case StatusPlaced:
		return nil
	case StatusAssigned:
		if o.courierID == nil || !o.courierID.IsEqual(courierID) {
			return fmt.Errorf("%w: order is assigned to a different courier", ErrInvalidTransition)
		}

		newStatus, err := o.status.Release()
		if err != nil {
			return err
		}

		o.status = newStatus
		o.courierID = nil
		return nil
	default:
		return fmt.Errorf("%w: cannot reject delivery of order in status %s", ErrInvalidTransition, o.status)
	}
}

// ConfirmPickup records that the assigned courier collected the order.
// Fails with ErrNotAssignedToCourier when the acting courier is not the
// assigned one, regardless of status. Raises OrderPickedUp.
func (o *Order) ConfirmPickup(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrNotAssignedToCourier
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(events.OrderPickedUp{OrderID: o.id, CourierID: courierID})
	return nil
}

// ConfirmDropoff records that the assigned courier completed the delivery.
// Fails with ErrNotAssignedToCourier when the acting courier is not the
// assigned one. Raises OrderDelivered and leaves the order in its terminal
// status.
func (o *Order) ConfirmDropoff(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrNotAssignedToCourier
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(events.OrderDelivered{OrderID: o.id, CourierID: courierID})
	return nil
}

// StartPreparing advances the preparation track to Active.
// Independent of the courier track. Raises OrderPreparationStarted.
func (o *Order) StartPreparing() error {
	newStatus, err := o.preparation.Start()
	if err != nil {
		return err
	}

	o.preparation = newStatus
	o.raise(events.OrderPreparationStarted{OrderID: o.id})
	return nil
}

// FinishPreparing advances the preparation track to Completed.
// Independent of the courier track. Raises OrderPreparationFinished.
func (o *Order) FinishPreparing() error {
	newStatus, err := o.preparation.Finish()
	if err != nil {
		return err
	}

	o.preparation = newStatus
	o.raise(events.OrderPreparationFinished{OrderID: o.id})
	return nil
}

// Events returns a copy of the pending domain events in the order they were
// raised. Pending events are transient and never persisted.
func (o *Order) Events() []events.DomainEvent {
	return slices.Clone(o.pendingEvents)
}

// ClearEvents drops the pending events after a successful publish.
func (o *Order) ClearEvents() {
	o.pendingEvents = nil
}

func (o *Order) raise(event events.DomainEvent) {
	o.pendingEvents = append(o.pendingEvents, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPreparation(preparation PreparationStatus) error {
	if err := preparation.Validate(); err != nil {
		return err
	}
	o.preparation = preparation
	return nil
}

func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	id := *courierID
	o.courierID = &id
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", version))
	}
	o.version = version
	return nil
}

// validateCourierConsistency enforces agreement between the status track and
// the courier reference: unassigned orders are Placed, assigned ones are not.
func (o *Order) validateCourierConsistency() error {
	hasCourier := o.courierID != nil

	if hasCourier && o.status == StatusPlaced {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot have a courier", o.status))
	}
	if !hasCourier && o.status != StatusPlaced {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must have a courier", o.status))
	}

	return nil
}

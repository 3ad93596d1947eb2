package order

import (
	"errors"
	"fmt"

	"mealdrop/internal/pkg/errs"
)

// ErrInvalidTransition is returned when an operation is not legal in the
// order's current status. Transitions are all-or-nothing: no partial mutation
// escapes an aggregate method that returns this error.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status is the courier-track lifecycle state of an order.
// It implements a state machine with a single linear path:
//
//	Placed ──> Assigned ──> PickedUp ──> Delivered
//	   ^           │
//	   └───────────┘
//	(rejection/timeout releases an assigned order back to Placed)
//
// Status never regresses otherwise; Delivered is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status after checkout. Placed orders
	// are eligible for delivery requests.
	StatusPlaced

	// StatusAssigned indicates a courier accepted the delivery request.
	StatusAssigned

	// StatusPickedUp indicates the assigned courier collected the order
	// from the restaurant.
	StatusPickedUp

	// StatusDelivered is the terminal status: the order reached the customer.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPlaced:    "Placed",
		StatusAssigned:  "Assigned",
		StatusPickedUp:  "PickedUp",
		StatusDelivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:    "Placed",
		StatusAssigned:  "Assigned",
		StatusPickedUp:  "PickedUp",
		StatusDelivered: "Delivered",
	}
}

// Validate rejects StatusUnknown and any out-of-range value. Used when
// statuses arrive from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions Placed -> Assigned. Any other source status fails with
// ErrInvalidTransition: an order already assigned, picked up, or delivered
// cannot be assigned again without being released first.
func (s Status) Assign() (Status, error) {
	if s != StatusPlaced {
		return 0, fmt.Errorf("%w: cannot assign order in status %s", ErrInvalidTransition, s)
	}
	return StatusAssigned, nil
}

// Release transitions Assigned -> Placed, making the order eligible for
// reassignment after a rejection or timeout. Orders that progressed to
// PickedUp or Delivered are never released.
func (s Status) Release() (Status, error) {
	if s != StatusAssigned {
		return 0, fmt.Errorf("%w: cannot release order in status %s", ErrInvalidTransition, s)
	}
	return StatusPlaced, nil
}

// PickUp transitions Assigned -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != StatusAssigned {
		return 0, fmt.Errorf("%w: cannot pick up order in status %s", ErrInvalidTransition, s)
	}
	return StatusPickedUp, nil
}

// Deliver transitions PickedUp -> Delivered, the terminal status.
func (s Status) Deliver() (Status, error) {
	if s != StatusPickedUp {
		return 0, fmt.Errorf("%w: cannot deliver order in status %s", ErrInvalidTransition, s)
	}
	return StatusDelivered, nil
}

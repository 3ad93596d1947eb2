package deliveryrequest

import (
	"errors"
	"fmt"
	"time"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/pkg/errs"
	"mealdrop/internal/pkg/guard"
)

var (
	// ErrDeliveryRequestIsNotConstructed is returned when a DeliveryRequest
	// was not created through NewDeliveryRequest or RestoreDeliveryRequest.
	ErrDeliveryRequestIsNotConstructed = errors.New("DeliveryRequest must be created via NewDeliveryRequest constructor")

	// ErrRequestedAtIsRequired is returned when a request carries no
	// requested-at timestamp.
	ErrRequestedAtIsRequired = errs.NewValueIsRequiredError("requestedAt")
)

// DeliveryRequest is the offer of one order's delivery to one courier. It is
// an aggregate of its own so that accepting, rejecting, and timing out can be
// serialized per request through optimistic concurrency, independently of the
// order.
//
// A request starts in Requested and resolves exactly once, to Accepted,
// Rejected, or TimedOut. It raises no domain events; resolution effects are
// carried by the order's events.
type DeliveryRequest struct {
	id          kernel.UUID
	orderID     kernel.UUID
	courierID   kernel.UUID
	requestedAt time.Time
	status      Status
	version     int64

	guard guard.ConstructorGuard
}

// NewDeliveryRequest offers the delivery of the given order to the given
// courier. The courier must be on shift and the order must still be awaiting
// assignment. Who picks the courier is outside this model; the constructor
// only checks that the pairing is currently offerable.
func NewDeliveryRequest(
	id kernel.UUID,
	o *order.Order,
	c *courier.Courier,
	requestedAt time.Time,
) (*DeliveryRequest, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.OnShift() {
		return nil, courier.ErrCourierOffShift
	}
	if o.Status() != order.StatusPlaced {
		return nil, fmt.Errorf("%w: cannot request delivery of order in status %s",
			order.ErrInvalidTransition, o.Status())
	}

	r := &DeliveryRequest{
		status:  StatusRequested,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(o.ID()),
		r.setCourierID(c.ID()),
		r.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreDeliveryRequest reconstructs a request from persistent storage.
func RestoreDeliveryRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	requestedAt time.Time,
	status Status,
	version int64,
) (*DeliveryRequest, error) {
	r := &DeliveryRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCourierID(courierID),
		r.setRequestedAt(requestedAt),
		r.setStatus(status),
		r.setVersion(version),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks that the DeliveryRequest was created via a constructor.
func (r *DeliveryRequest) Validate() error {
	if r == nil {
		return ErrDeliveryRequestIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryRequestIsNotConstructed)
}

// IsEqual compares two requests by identity.
func (r *DeliveryRequest) IsEqual(other *DeliveryRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request identity.
func (r *DeliveryRequest) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identity of the offered order.
func (r *DeliveryRequest) OrderID() kernel.UUID {
	return r.orderID
}

// CourierID returns the identity of the courier the order was offered to.
func (r *DeliveryRequest) CourierID() kernel.UUID {
	return r.courierID
}

// RequestedAt returns the time the offer was made. The expiry sweep uses it
// to find requests that were never answered.
func (r *DeliveryRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// Status returns the request status.
func (r *DeliveryRequest) Status() Status {
	return r.status
}

// Version returns the optimistic-concurrency version read from storage.
func (r *DeliveryRequest) Version() int64 {
	return r.version
}

// IsPending reports whether the request still awaits a resolution.
func (r *DeliveryRequest) IsPending() bool {
	return r.status == StatusRequested
}

// Accept resolves the request positively. Fails with ErrAlreadyResolved when
// the request already reached a terminal status.
func (r *DeliveryRequest) Accept() error {
	return r.resolveTo(StatusAccepted)
}

// Reject resolves the request negatively. Fails with ErrAlreadyResolved when
// the request already reached a terminal status.
func (r *DeliveryRequest) Reject() error {
	return r.resolveTo(StatusRejected)
}

// Timeout expires an unanswered request. Fails with ErrAlreadyResolved when
// the courier answered first.
func (r *DeliveryRequest) Timeout() error {
	return r.resolveTo(StatusTimedOut)
}

func (r *DeliveryRequest) resolveTo(target Status) error {
	newStatus, err := r.status.resolve(target)
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *DeliveryRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *DeliveryRequest) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *DeliveryRequest) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	r.courierID = courierID
	return nil
}

func (r *DeliveryRequest) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return ErrRequestedAtIsRequired
	}
	r.requestedAt = requestedAt
	return nil
}

func (r *DeliveryRequest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *DeliveryRequest) setVersion(version int64) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", version))
	}
	r.version = version
	return nil
}

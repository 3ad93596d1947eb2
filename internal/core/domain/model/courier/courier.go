package courier

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
	// ErrCourierIsNotConstructed is returned when a Courier was not created
	// through NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCourierOffShift is returned when an operation requires the courier
	// to be on shift.
	ErrCourierOffShift = errors.New("courier is not on shift")

	// ErrFullNameIsRequired is returned when a courier carries no name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("fullName")
)

// Courier is the aggregate for a delivery person. It tracks shift
// participation and the last reported location. The courier does not hold
// references to its orders or delivery requests; those are resolved by
// queries on the order side.
//
// Like Order, a courier collects domain events in a transient pending list
// that the application layer publishes after commit, and carries a version
// for optimistic concurrency.
type Courier struct {
	id        kernel.UUID
	accountID kernel.UUID
	fullName  string
	onShift   bool
	location  *kernel.LocationReport
	version   int64

	pendingEvents []events.DomainEvent
	guard         guard.ConstructorGuard
}

// NewCourier registers a courier for the given user account. The courier
// starts off shift with no known location. Raises CourierAdded.
func NewCourier(id kernel.UUID, accountID kernel.UUID, fullName string) (*Courier, error) {
	c := &Courier{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccountID(accountID),
		c.setFullName(fullName),
	); err != nil {
		return nil, err
	}

	c.raise(events.CourierAdded{
		CourierID: c.id,
		AccountID: c.accountID,
		FullName:  c.fullName,
	})

	return c, nil
}

// RestoreCourier reconstructs a courier from persistent storage without
// raising events.
func RestoreCourier(
	id kernel.UUID,
	accountID kernel.UUID,
	fullName string,
	onShift bool,
	location *kernel.LocationReport,
	version int64,
) (*Courier, error) {
	c := &Courier{
		onShift: onShift,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setAccountID(accountID),
		c.setFullName(fullName),
		c.setLocation(location),
		c.setVersion(version),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Courier was created via a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier identity.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// AccountID returns the identity of the backing user account.
func (c *Courier) AccountID() kernel.UUID {
	return c.accountID
}

// FullName returns the courier's display name.
func (c *Courier) FullName() string {
	return c.fullName
}

// OnShift reports whether the courier currently accepts delivery requests.
func (c *Courier) OnShift() bool {
	return c.onShift
}

// Location returns the last reported location, or nil when the courier has
// never reported one.
func (c *Courier) Location() *kernel.LocationReport {
	return c.location
}

// Version returns the optimistic-concurrency version read from storage.
func (c *Courier) Version() int64 {
	return c.version
}

// StartShift marks the courier available for delivery requests.
// Starting an already started shift is a no-op and raises nothing.
func (c *Courier) StartShift() {
	if c.onShift {
		return
	}
	c.onShift = true
	c.raise(events.CourierShiftStarted{CourierID: c.id})
}

// StopShift marks the courier unavailable. Orders already assigned to the
// courier stay assigned; going off shift only stops new requests. Stopping
// an already stopped shift is a no-op and raises nothing.
func (c *Courier) StopShift() {
	if !c.onShift {
		return
	}
	c.onShift = false
	c.raise(events.CourierShiftStopped{CourierID: c.id})
}

// UpdateLocation records a new location report. Reports are accepted
// unconditionally, on or off shift, with no ordering check against the
// previous report; the courier app is the only writer and sends them in
// order. Raises CourierLocationUpdated on every accepted report.
func (c *Courier) UpdateLocation(report kernel.LocationReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	c.location = &report
	c.raise(events.CourierLocationUpdated{
		CourierID: c.id,
		Position:  report.Position(),
	})
	return nil
}

// Events returns a copy of the pending domain events in the order they were
// raised.
func (c *Courier) Events() []events.DomainEvent {
	return slices.Clone(c.pendingEvents)
}

// ClearEvents drops the pending events after a successful publish.
func (c *Courier) ClearEvents() {
	c.pendingEvents = nil
}

func (c *Courier) raise(event events.DomainEvent) {
	c.pendingEvents = append(c.pendingEvents, event)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *Courier) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	c.fullName = fullName
	return nil
}

func (c *Courier) setLocation(location *kernel.LocationReport) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	report := *location
	c.location = &report
	return nil
}

func (c *Courier) setVersion(version int64) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", version))
	}
	c.version = version
	return nil
}

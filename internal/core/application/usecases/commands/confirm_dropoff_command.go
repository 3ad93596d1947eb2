package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrConfirmDropoffCommandIsNotConstructed = errors.New(
	"ConfirmDropoffCommand must be created via NewConfirmDropoffCommand constructor",
)

// ConfirmDropoffCommand represents the assigned courier reporting that they
// handed the order to the customer.
type ConfirmDropoffCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDropoffCommand creates a dropoff confirmation command.
func NewConfirmDropoffCommand(orderID kernel.UUID, courierID kernel.UUID) (ConfirmDropoffCommand, error) {
	command := ConfirmDropoffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return ConfirmDropoffCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDropoffCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDropoffCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c ConfirmDropoffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier ID from the command.
func (c ConfirmDropoffCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ConfirmDropoffCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDropoffCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

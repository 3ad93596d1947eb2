package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the assigned courier reporting that they
// collected the order from the restaurant.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a pickup confirmation command.
func NewConfirmPickupCommand(orderID kernel.UUID, courierID kernel.UUID) (ConfirmPickupCommand, error) {
	command := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier ID from the command.
func (c ConfirmPickupCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ConfirmPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPickupCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

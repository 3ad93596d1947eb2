package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrAcceptDeliveryRequestCommandIsNotConstructed = errors.New(
	"AcceptDeliveryRequestCommand must be created via NewAcceptDeliveryRequestCommand constructor",
)

// AcceptDeliveryRequestCommand represents a courier accepting the delivery
// of an order offered to them.
type AcceptDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryRequestCommand creates a command for the courier's
// positive answer.
func NewAcceptDeliveryRequestCommand(orderID kernel.UUID, courierID kernel.UUID) (AcceptDeliveryRequestCommand, error) {
	command := AcceptDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return AcceptDeliveryRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryRequestCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c AcceptDeliveryRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier ID from the command.
func (c AcceptDeliveryRequestCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AcceptDeliveryRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptDeliveryRequestCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

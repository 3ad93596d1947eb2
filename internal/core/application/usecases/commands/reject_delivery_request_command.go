package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrRejectDeliveryRequestCommandIsNotConstructed = errors.New(
	"RejectDeliveryRequestCommand must be created via NewRejectDeliveryRequestCommand constructor",
)

// RejectDeliveryRequestCommand represents a courier declining the delivery
// of an order offered to them.
type RejectDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDeliveryRequestCommand creates a command for the courier's
// negative answer.
func NewRejectDeliveryRequestCommand(orderID kernel.UUID, courierID kernel.UUID) (RejectDeliveryRequestCommand, error) {
	command := RejectDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return RejectDeliveryRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryRequestCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c RejectDeliveryRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier ID from the command.
func (c RejectDeliveryRequestCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RejectDeliveryRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectDeliveryRequestCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

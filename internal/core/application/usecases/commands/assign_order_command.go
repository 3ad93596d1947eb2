package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents an externally decided pairing of an order
// with a courier. Handling it creates a delivery request; the courier still
// has to accept before the order is assigned.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command offering the order to the courier.
// Automatically generates a unique ID for the delivery request.
func NewAssignOrderCommand(orderID kernel.UUID, courierID kernel.UUID) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// RequestID returns the generated delivery request ID.
func (c AssignOrderCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the order ID from the command.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier ID from the command.
func (c AssignOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignOrderCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

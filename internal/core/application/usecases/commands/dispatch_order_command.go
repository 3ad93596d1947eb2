package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand asks the system to pick a courier for an order and
// offer it to them. Unlike AssignOrderCommand the courier is not named; the
// order dispatcher selects one from the current roster.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command dispatching the order.
// Automatically generates a unique ID for the delivery request.
func NewDispatchOrderCommand(orderID kernel.UUID) (DispatchOrderCommand, error) {
	command := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(kernel.NewUUID()),
		command.setOrderID(orderID),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// RequestID returns the generated delivery request ID.
func (c DispatchOrderCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the order ID from the command.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DispatchOrderCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

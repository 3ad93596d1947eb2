package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrFinishPreparingCommandIsNotConstructed = errors.New(
	"FinishPreparingCommand must be created via NewFinishPreparingCommand constructor",
)

// FinishPreparingCommand represents the restaurant finishing the preparation
// of an order.
type FinishPreparingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishPreparingCommand creates a command to finish preparation.
func NewFinishPreparingCommand(orderID kernel.UUID) (FinishPreparingCommand, error) {
	command := FinishPreparingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return FinishPreparingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishPreparingCommand) Validate() error {
	return c.guard.Validate(ErrFinishPreparingCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c FinishPreparingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FinishPreparingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

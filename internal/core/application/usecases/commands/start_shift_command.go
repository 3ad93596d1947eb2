package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrStartShiftCommandIsNotConstructed = errors.New(
	"StartShiftCommand must be created via NewStartShiftCommand constructor",
)

// StartShiftCommand represents a courier going on shift.
type StartShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartShiftCommand creates a command to start the given courier's shift.
func NewStartShiftCommand(courierID kernel.UUID) (StartShiftCommand, error) {
	command := StartShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return StartShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShiftCommand) Validate() error {
	return c.guard.Validate(ErrStartShiftCommandIsNotConstructed)
}

// CourierID returns the courier ID from the command.
func (c StartShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *StartShiftCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrStopShiftCommandIsNotConstructed = errors.New(
	"StopShiftCommand must be created via NewStopShiftCommand constructor",
)

// StopShiftCommand represents a courier going off shift.
type StopShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopShiftCommand creates a command to stop the given courier's shift.
func NewStopShiftCommand(courierID kernel.UUID) (StopShiftCommand, error) {
	command := StopShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return StopShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StopShiftCommand) Validate() error {
	return c.guard.Validate(ErrStopShiftCommandIsNotConstructed)
}

// CourierID returns the courier ID from the command.
func (c StopShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *StopShiftCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

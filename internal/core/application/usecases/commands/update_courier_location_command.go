package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand represents a location report from the courier
// app.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	report    kernel.LocationReport

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a command carrying one location
// report for the given courier.
func NewUpdateCourierLocationCommand(courierID kernel.UUID, report kernel.LocationReport) (UpdateCourierLocationCommand, error) {
	command := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setReport(report),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// CourierID returns the courier ID from the command.
func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Report returns the location report from the command.
func (c UpdateCourierLocationCommand) Report() kernel.LocationReport {
	return c.report
}

func (c *UpdateCourierLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierLocationCommand) setReport(report kernel.LocationReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	c.report = report
	return nil
}

package commands

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrFullNameIsRequired = errors.New("full name is required")
)

// CreateCourierCommand represents a request to register a new courier for a
// user account.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	accountID kernel.UUID
	fullName  string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
func NewCreateCourierCommand(accountID kernel.UUID, fullName string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setAccountID(accountID),
		command.setFullName(fullName),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// AccountID returns the backing user account ID.
func (c CreateCourierCommand) AccountID() kernel.UUID {
	return c.accountID
}

// FullName returns the courier display name.
func (c CreateCourierCommand) FullName() string {
	return c.fullName
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateCourierCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

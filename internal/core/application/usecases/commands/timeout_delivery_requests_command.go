package commands

import (
	"errors"

	"mealdrop/internal/pkg/guard"
)

var ErrTimeoutDeliveryRequestsCommandIsNotConstructed = errors.New(
	"TimeoutDeliveryRequestsCommand must be created via NewTimeoutDeliveryRequestsCommand constructor",
)

// TimeoutDeliveryRequestsCommand triggers one sweep over unanswered delivery
// requests. It carries no payload; the handler owns the expiry policy.
type TimeoutDeliveryRequestsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewTimeoutDeliveryRequestsCommand creates a sweep trigger command.
func NewTimeoutDeliveryRequestsCommand() (TimeoutDeliveryRequestsCommand, error) {
	return TimeoutDeliveryRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TimeoutDeliveryRequestsCommand) Validate() error {
	return c.guard.Validate(ErrTimeoutDeliveryRequestsCommandIsNotConstructed)
}

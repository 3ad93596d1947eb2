package commands

import (
	"errors"
	"slices"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/pkg/guard"
)

var ErrCheckoutBasketCommandIsNotConstructed = errors.New(
	"CheckoutBasketCommand must be created via NewCheckoutBasketCommand constructor",
)

// CheckoutBasketCommand represents a customer checking out their current
// selection. Lines are carried as submitted; the handler merges duplicate
// dishes and enforces the minimum order value through the basket model.
type CheckoutBasketCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	lines           []order.Item

	guard guard.ConstructorGuard
}

// NewCheckoutBasketCommand creates a checkout command.
func NewCheckoutBasketCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	lines []order.Item,
) (CheckoutBasketCommand, error) {
	command := CheckoutBasketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setDeliveryAddress(deliveryAddress),
		command.setLines(lines),
	); err != nil {
		return CheckoutBasketCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutBasketCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutBasketCommandIsNotConstructed)
}

// CustomerID returns the checking out customer's ID.
func (c CheckoutBasketCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the selection draws from.
func (c CheckoutBasketCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the destination address.
func (c CheckoutBasketCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Lines returns a copy of the submitted lines.
func (c CheckoutBasketCommand) Lines() []order.Item {
	return slices.Clone(c.lines)
}

func (c *CheckoutBasketCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutBasketCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CheckoutBasketCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CheckoutBasketCommand) setLines(lines []order.Item) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = slices.Clone(lines)
	return nil
}

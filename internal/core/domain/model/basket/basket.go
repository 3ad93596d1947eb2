package basket

import (
	"errors"
	"fmt"
	"slices"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/pkg/errs"
	"mealdrop/internal/pkg/guard"
)

var (
	// ErrBasketIsNotConstructed is returned when a Basket was not created
	// through NewBasket.
	ErrBasketIsNotConstructed = errors.New("Basket must be created via NewBasket constructor")

	// ErrBasketIsEmpty is returned when checking out a basket with no items.
	ErrBasketIsEmpty = errors.New("basket is empty")

	// ErrBelowMinimumOrder is returned when the basket total does not reach
	// the restaurant's minimum order value.
	ErrBelowMinimumOrder = errors.New("basket total is below the minimum order value")
)

// Basket collects a customer's selection from one restaurant before
// checkout. It is a transient model: baskets are built per request and
// never persisted, so they carry no version and raise no events.
type Basket struct {
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	minimumOrderValue int64
	items             []order.Item

	guard guard.ConstructorGuard
}

// NewBasket creates an empty basket for the given customer and restaurant.
// minimumOrderValue is the restaurant's checkout threshold in minor currency
// units; zero means no threshold.
func NewBasket(customerID kernel.UUID, restaurantID kernel.UUID, minimumOrderValue int64) (*Basket, error) {
	b := &Basket{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setCustomerID(customerID),
		b.setRestaurantID(restaurantID),
		b.setMinimumOrderValue(minimumOrderValue),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks that the Basket was created via the constructor.
func (b *Basket) Validate() error {
	if b == nil {
		return ErrBasketIsNotConstructed
	}
	return b.guard.Validate(ErrBasketIsNotConstructed)
}

// CustomerID returns the identity of the basket owner.
func (b *Basket) CustomerID() kernel.UUID {
	return b.customerID
}

// RestaurantID returns the identity of the restaurant the basket draws from.
func (b *Basket) RestaurantID() kernel.UUID {
	return b.restaurantID
}

// Items returns a copy of the basket lines in insertion order.
func (b *Basket) Items() []order.Item {
	return slices.Clone(b.items)
}

// IsEmpty reports whether the basket has no lines.
func (b *Basket) IsEmpty() bool {
	return len(b.items) == 0
}

// TotalAmount returns the basket total in minor currency units.
func (b *Basket) TotalAmount() int64 {
	var total int64
	for _, item := range b.items {
		total += item.TotalPrice()
	}
	return total
}

// IsAboveMinimum reports whether the basket total reaches the restaurant's
// minimum order value.
func (b *Basket) IsAboveMinimum() bool {
	return b.TotalAmount() >= b.minimumOrderValue
}

// AddItem adds a line to the basket. A line for the same dish merges into
// the existing one by summing quantities; the merged line is revalidated, so
// exceeding the per-dish quantity limit fails and leaves the basket
// unchanged.
func (b *Basket) AddItem(item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i, existing := range b.items {
		if existing.DishID().IsEqual(item.DishID()) {
			merged, err := order.NewItem(
				existing.DishID(),
				existing.DishName(),
				existing.Quantity()+item.Quantity(),
				existing.UnitPrice(),
			)
			if err != nil {
				return err
			}
			b.items[i] = merged
			return nil
		}
	}

	b.items = append(b.items, item)
	return nil
}

// RemoveItem drops the line for the given dish. Removing a dish that is not
// in the basket is a no-op.
func (b *Basket) RemoveItem(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	b.items = slices.DeleteFunc(b.items, func(item order.Item) bool {
		return item.DishID().IsEqual(dishID)
	})
	return nil
}

// Checkout validates the basket for ordering and returns its lines. The
// basket must be non-empty and reach the minimum order value. The basket
// itself is left untouched; the caller places the order and discards the
// basket.
func (b *Basket) Checkout() ([]order.Item, error) {
	if b.IsEmpty() {
		return nil, ErrBasketIsEmpty
	}
	if !b.IsAboveMinimum() {
		return nil, fmt.Errorf("%w: total %d, minimum %d",
			ErrBelowMinimumOrder, b.TotalAmount(), b.minimumOrderValue)
	}
	return b.Items(), nil
}

func (b *Basket) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

func (b *Basket) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	b.restaurantID = restaurantID
	return nil
}

func (b *Basket) setMinimumOrderValue(minimumOrderValue int64) error {
	if minimumOrderValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minimumOrderValue",
			fmt.Errorf("%d is negative", minimumOrderValue))
	}
	b.minimumOrderValue = minimumOrderValue
	return nil
}

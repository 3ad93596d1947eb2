package order

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/errs"
	"mealdrop/internal/pkg/guard"
)

const (
	itemQuantityMin = 1
	itemQuantityMax = 100
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ErrDishNameIsRequired is returned when an item carries no dish name.
var ErrDishNameIsRequired = errs.NewValueIsRequiredError("dishName")

// ErrUnitPriceIsInvalid is returned for negative unit prices.
var ErrUnitPriceIsInvalid = errs.NewValueIsInvalidError("unitPrice")

// Item is one line of an order: a dish reference, a quantity, and the unit
// price captured at checkout time. Items are immutable after construction;
// the order total is always recomputed from them, never stored.
type Item struct { //nolint:recvcheck //using for validation
	dishID    kernel.UUID
	dishName  string
	quantity  int
	unitPrice int64 // minor currency units

	guard guard.ConstructorGuard
}

// NewItem creates an order line. The dish reference must be valid, quantity
// must lie in [1, 100], and the unit price must not be negative.
func NewItem(dishID kernel.UUID, dishName string, quantity int, unitPrice int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setDishName(dishName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// DishID returns the referenced dish identity.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// DishName returns the dish name captured at checkout.
func (i Item) DishName() string {
	return i.dishName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// TotalPrice returns quantity times unit price.
func (i Item) TotalPrice() int64 {
	return int64(i.quantity) * i.unitPrice
}

func (i *Item) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	i.dishID = dishID
	return nil
}

func (i *Item) setDishName(dishName string) error {
	if dishName == "" {
		return ErrDishNameIsRequired
	}
	i.dishName = dishName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < itemQuantityMin || quantity > itemQuantityMax {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, itemQuantityMin, itemQuantityMax)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return ErrUnitPriceIsInvalid
	}
	i.unitPrice = unitPrice
	return nil
}

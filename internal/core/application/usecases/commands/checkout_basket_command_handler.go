package commands

import (
	"context"

	"mealdrop/internal/core/domain/model/basket"
	"mealdrop/internal/core/domain/model/kernel"
)

// CheckoutBasketCommandHandler validates a customer's selection through the
// basket model and places the resulting order. Duplicate dish lines merge,
// and a basket below the minimum order value is refused before anything is
// persisted.
type CheckoutBasketCommandHandler struct {
	placeOrder        PlaceOrderCommandHandler
	minimumOrderValue int64
}

// NewCheckoutBasketCommandHandler creates a checkout handler.
// minimumOrderValue is the checkout threshold in minor currency units.
func NewCheckoutBasketCommandHandler(placeOrder PlaceOrderCommandHandler, minimumOrderValue int64) CheckoutBasketCommandHandler {
	return CheckoutBasketCommandHandler{
		placeOrder:        placeOrder,
		minimumOrderValue: minimumOrderValue,
	}
}

// Handle processes the checkout and returns the ID of the placed order.
func (h *CheckoutBasketCommandHandler) Handle(ctx context.Context, cmd CheckoutBasketCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	basketEntity, err := basket.NewBasket(cmd.CustomerID(), cmd.RestaurantID(), h.minimumOrderValue)
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, line := range cmd.Lines() {
		if err = basketEntity.AddItem(line); err != nil {
			return kernel.UUID{}, err
		}
	}

	items, err := basketEntity.Checkout()
	if err != nil {
		return kernel.UUID{}, err
	}

	placeCmd, err := NewPlaceOrderCommand(cmd.CustomerID(), cmd.RestaurantID(), cmd.DeliveryAddress(), items)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.placeOrder.Handle(ctx, placeCmd); err != nil {
		return kernel.UUID{}, err
	}

	return placeCmd.OrderID(), nil
}

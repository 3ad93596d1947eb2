package commands

import (
	"context"

	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/core/ports"
)

// PlaceOrderCommandHandler creates and persists a new order, then publishes
// OrderPlaced after the transaction commits.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for placing orders.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the place order command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		cmd.Items(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, orderEntity)
	return nil
}

package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// ConfirmPickupCommandHandler advances an order to PickedUp on the assigned
// courier's confirmation and publishes OrderPickedUp after commit.
type ConfirmPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmations.
func NewConfirmPickupCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the pickup confirmation.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.ConfirmPickup(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, orderEntity)
	return nil
}

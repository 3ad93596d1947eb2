package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// ConfirmDropoffCommandHandler advances an order to Delivered on the
// assigned courier's confirmation and publishes OrderDelivered after commit.
type ConfirmDropoffCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewConfirmDropoffCommandHandler creates a handler for dropoff confirmations.
func NewConfirmDropoffCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ConfirmDropoffCommandHandler {
	return ConfirmDropoffCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dropoff confirmation.
func (h *ConfirmDropoffCommandHandler) Handle(ctx context.Context, cmd ConfirmDropoffCommand) error {
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

	if err = orderEntity.ConfirmDropoff(cmd.CourierID()); err != nil {
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

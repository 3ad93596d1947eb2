package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// FinishPreparingCommandHandler advances an order's preparation track to
// Completed and publishes OrderPreparationFinished after commit.
type FinishPreparingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewFinishPreparingCommandHandler creates a handler for finishing preparation.
func NewFinishPreparingCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) FinishPreparingCommandHandler {
	return FinishPreparingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the preparation finish.
func (h *FinishPreparingCommandHandler) Handle(ctx context.Context, cmd FinishPreparingCommand) error {
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

	if err = orderEntity.FinishPreparing(); err != nil {
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

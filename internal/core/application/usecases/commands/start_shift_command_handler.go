package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// StartShiftCommandHandler marks a courier available for delivery requests.
type StartShiftCommandHandler struct {
	uowFactory CourierUoWFactory
	publisher  ports.EventPublisher
}

// NewStartShiftCommandHandler creates a handler for starting shifts.
func NewStartShiftCommandHandler(uowFactory CourierUoWFactory, publisher ports.EventPublisher) StartShiftCommandHandler {
	return StartShiftCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start shift command. Starting an already started
// shift commits without changes and publishes nothing.
func (h *StartShiftCommandHandler) Handle(ctx context.Context, cmd StartShiftCommand) error {
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

	courierRepo := uow.CourierRepository()
	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	courierEntity.StartShift()

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, courierEntity)
	return nil
}

package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// StopShiftCommandHandler marks a courier unavailable for new delivery
// requests. Orders the courier already accepted stay assigned.
type StopShiftCommandHandler struct {
	uowFactory CourierUoWFactory
	publisher  ports.EventPublisher
}

// NewStopShiftCommandHandler creates a handler for stopping shifts.
func NewStopShiftCommandHandler(uowFactory CourierUoWFactory, publisher ports.EventPublisher) StopShiftCommandHandler {
	return StopShiftCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the stop shift command. Stopping an already stopped shift
// commits without changes and publishes nothing.
func (h *StopShiftCommandHandler) Handle(ctx context.Context, cmd StopShiftCommand) error {
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

	courierEntity.StopShift()

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, courierEntity)
	return nil
}

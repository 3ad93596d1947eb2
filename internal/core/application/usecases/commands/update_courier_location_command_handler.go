package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// UpdateCourierLocationCommandHandler records a courier location report and
// publishes CourierLocationUpdated after commit.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateCourierLocationCommandHandler creates a handler for location reports.
func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory, publisher ports.EventPublisher) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the location report.
func (h *UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
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

	if err = courierEntity.UpdateLocation(cmd.Report()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, courierEntity)
	return nil
}

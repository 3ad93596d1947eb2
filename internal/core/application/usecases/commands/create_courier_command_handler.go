package commands

import (
	"context"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/ports"
)

// CreateCourierCommandHandler handles courier registration. Persists the new
// courier and publishes CourierAdded after the transaction commits.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, publisher ports.EventPublisher) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the courier creation command.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.AccountID(), cmd.FullName())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, courierEntity)
	return nil
}

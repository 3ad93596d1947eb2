package commands

import (
	"context"

	"mealdrop/internal/core/ports"
)

// AcceptDeliveryRequestCommandHandler resolves a pending delivery request
// positively and assigns the order to the accepting courier. Both writes
// happen in one transaction; a racing resolution of the same request or a
// concurrent assignment of the order surfaces as a concurrency conflict and
// is returned to the caller unretried.
type AcceptDeliveryRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptDeliveryRequestCommandHandler creates a handler for accepting
// delivery requests.
func NewAcceptDeliveryRequestCommandHandler(uowFactory DispatchUoWFactory, publisher ports.EventPublisher) AcceptDeliveryRequestCommandHandler {
	return AcceptDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the acceptance.
func (h *AcceptDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryRequestCommand) error {
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

	// The lookup ignores status so a request resolved by a competing writer
	// fails Accept() with ErrAlreadyResolved instead of reading as missing.
	requestRepo := uow.DeliveryRequestRepository()
	request, err := requestRepo.GetByOrderAndCourier(ctx, cmd.OrderID(), cmd.CourierID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = request.Accept(); err != nil {
		return err
	}
	if err = orderEntity.AcceptDeliveryRequest(cmd.CourierID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
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

package commands

import (
	"context"
	"errors"
	"time"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/ports"
	"mealdrop/internal/pkg/errs"
)

// AssignOrderCommandHandler turns an external pairing decision into a
// pending delivery request. The order and courier are loaded so the domain
// can verify the pairing is offerable: the courier must be on shift and the
// order still awaiting assignment.
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	now        func() time.Time
}

// NewAssignOrderCommandHandler creates a handler for offering orders to
// couriers. A nil now falls back to time.Now.
func NewAssignOrderCommandHandler(uowFactory DispatchUoWFactory, now func() time.Time) AssignOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the assignment command.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courierEntity, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	requestRepo := uow.DeliveryRequestRepository()
	if err = ensureNoPendingRequest(ctx, requestRepo, cmd.OrderID(), cmd.CourierID()); err != nil {
		return err
	}

	request, err := deliveryrequest.NewDeliveryRequest(cmd.RequestID(), orderEntity, courierEntity, h.now())
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureNoPendingRequest keeps offers unique per (order, courier) pair. The
// partial unique index on delivery_requests backs this check against races.
func ensureNoPendingRequest(ctx context.Context, repo ports.DeliveryRequestRepository, orderID kernel.UUID, courierID kernel.UUID) error {
	_, err := repo.GetPendingByOrderAndCourier(ctx, orderID, courierID)
	if err == nil {
		return deliveryrequest.ErrAlreadyRequested
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}

package commands

import (
	"context"
	"errors"
	"log/slog"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/pkg/errs"
)

// rejectMaxAttempts bounds the retry loop in the reject handler. Rejections
// race with the expiry sweep often enough that retrying on a version
// conflict is worth it: the retry re-reads the request, usually finds it
// already timed out, and returns ErrAlreadyResolved instead of a spurious
// conflict to the courier app.
const rejectMaxAttempts = 3

// RejectDeliveryRequestCommandHandler resolves a pending delivery request
// negatively. If the order was already assigned to the rejecting courier it
// is released back for reassignment in the same transaction.
//
// This is the only handler that retries on concurrency conflicts. All other
// handlers surface the conflict to the caller.
type RejectDeliveryRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
	retries    interface{ Inc() }
	logger     *slog.Logger
}

// NewRejectDeliveryRequestCommandHandler creates a handler for rejecting
// delivery requests. retries counts retry attempts and may be nil.
func NewRejectDeliveryRequestCommandHandler(
	uowFactory DispatchUoWFactory,
	retries interface{ Inc() },
	logger *slog.Logger,
) RejectDeliveryRequestCommandHandler {
	return RejectDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		retries:    retries,
		logger:     logger.With("component", "reject_delivery_request"),
	}
}

// Handle processes the rejection, retrying up to rejectMaxAttempts times
// when the write loses an optimistic-concurrency race. Each attempt re-reads
// current state, so a request resolved by a competing writer fails with
// ErrAlreadyResolved rather than being retried further.
func (h *RejectDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for attempt := 1; attempt <= rejectMaxAttempts; attempt++ {
		err = h.handleOnce(ctx, cmd)
		if err == nil || !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}

		if attempt < rejectMaxAttempts {
			if h.retries != nil {
				h.retries.Inc()
			}
			h.logger.WarnContext(ctx, "retrying rejection after concurrency conflict",
				"order_id", cmd.OrderID().String(),
				"courier_id", cmd.CourierID().String(),
				"attempt", attempt)
		}
	}
	return err
}

func (h *RejectDeliveryRequestCommandHandler) handleOnce(ctx context.Context, cmd RejectDeliveryRequestCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The lookup ignores status: when a retry follows a lost race, the
	// re-read finds the resolved request and Reject() reports
	// ErrAlreadyResolved. Only a pair never offered reads as missing.
	requestRepo := uow.DeliveryRequestRepository()
	request, err := requestRepo.GetByOrderAndCourier(ctx, cmd.OrderID(), cmd.CourierID())
	if err != nil {
		return err
	}

	if err = request.Reject(); err != nil {
		return err
	}
	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Only release the order when the rejecting courier holds it. An order
	// still awaiting assignment needs no change, and an order held by a
	// different courier is none of this courier's business.
	if releasable(orderEntity, cmd.CourierID()) {
		if err = orderEntity.RejectDeliveryRequest(cmd.CourierID()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, orderEntity); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func releasable(orderEntity *order.Order, courierID kernel.UUID) bool {
	return orderEntity.Status() == order.StatusAssigned &&
		orderEntity.CourierID() != nil &&
		orderEntity.CourierID().IsEqual(courierID)
}

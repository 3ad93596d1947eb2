package commands

import (
	"context"
	"time"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/services"
)

// DispatchOrderCommandHandler offers an order to the courier the dispatcher
// picks. Candidates are ranked by workload: accepted-but-undelivered orders
// plus unanswered requests.
type DispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.OrderDispatcher
	now        func() time.Time
}

// NewDispatchOrderCommandHandler creates a handler for dispatcher-driven
// offers. A nil now falls back to time.Now.
func NewDispatchOrderCommandHandler(uowFactory DispatchUoWFactory, now func() time.Time) DispatchOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		now:        now,
	}
}

// Handle processes the dispatch command.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	couriers, err := uow.CourierRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	candidates := make([]services.CourierWorkload, 0, len(couriers))
	for _, courierEntity := range couriers {
		if !courierEntity.OnShift() {
			continue
		}

		active, loadErr := uow.OrderRepository().GetActiveByCourier(ctx, courierEntity.ID())
		if loadErr != nil {
			return loadErr
		}

		pending, loadErr := uow.DeliveryRequestRepository().GetPendingByCourier(ctx, courierEntity.ID())
		if loadErr != nil {
			return loadErr
		}

		candidates = append(candidates, services.CourierWorkload{
			Courier: courierEntity,
			Load:    len(active) + len(pending),
		})
	}

	selected, err := h.dispatcher.SelectCourier(orderEntity, candidates)
	if err != nil {
		return err
	}

	if err = ensureNoPendingRequest(ctx, uow.DeliveryRequestRepository(), cmd.OrderID(), selected.ID()); err != nil {
		return err
	}

	request, err := deliveryrequest.NewDeliveryRequest(cmd.RequestID(), orderEntity, selected, h.now())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/pkg/errs"
)

// TimeoutDeliveryRequestsCommandHandler expires delivery requests that were
// not answered within the configured window. Requests that lose the race
// against a concurrent accept or reject are skipped; the courier's answer
// wins.
type TimeoutDeliveryRequestsCommandHandler struct {
	uowFactory DispatchUoWFactory
	timeout    time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// NewTimeoutDeliveryRequestsCommandHandler creates a sweep handler. timeout
// is how long a request may stay unanswered. A nil now falls back to
// time.Now.
func NewTimeoutDeliveryRequestsCommandHandler(
	uowFactory DispatchUoWFactory,
	timeout time.Duration,
	now func() time.Time,
	logger *slog.Logger,
) TimeoutDeliveryRequestsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return TimeoutDeliveryRequestsCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
		now:        now,
		logger:     logger.With("component", "timeout_delivery_requests"),
	}
}

// Handle runs one sweep.
func (h *TimeoutDeliveryRequestsCommandHandler) Handle(ctx context.Context, cmd TimeoutDeliveryRequestsCommand) error {
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

	requestRepo := uow.DeliveryRequestRepository()
	cutoff := h.now().Add(-h.timeout)
	expired, err := requestRepo.GetPendingRequestedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	timedOut := 0
	for _, request := range expired {
		if err = request.Timeout(); err != nil {
			if errors.Is(err, deliveryrequest.ErrAlreadyResolved) {
				continue
			}
			return err
		}

		if err = requestRepo.Update(ctx, request); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				h.logger.InfoContext(ctx, "request resolved while sweeping, skipping",
					"request_id", request.ID().String())
				continue
			}
			return err
		}
		timedOut++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if timedOut > 0 {
		h.logger.InfoContext(ctx, "timed out delivery requests",
			"count", timedOut, "cutoff", cutoff)
	}
	return nil
}

package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"mealdrop/internal/core/application/usecases/commands"
	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutDeliveryRequestsCommandHandler_Handle(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	timeout := 30 * time.Second

	t.Run("should time out expired requests", func(t *testing.T) {
		ctx := t.Context()
		first := fixturePendingRequest(t, fixturePlacedOrder(t), fixtureOnShiftCourier(t))
		second := fixturePendingRequest(t, fixturePlacedOrder(t), fixtureOnShiftCourier(t))

		cmd, err := commands.NewTimeoutDeliveryRequestsCommand()
		require.NoError(t, err)

		_, mockRequestRepo, mockUoW, mockFactory := newDispatchMocks()

		cutoff := now.Add(-timeout)
		mockUoW.On("Begin", ctx).Return(nil).Once()
		mockUoW.On("DeliveryRequestRepository").Return(mockRequestRepo).Once()
		mockRequestRepo.On("GetPendingRequestedBefore", ctx, cutoff).
			Return([]*deliveryrequest.DeliveryRequest{first, second}, nil).Once()
		mockRequestRepo.On("Update", ctx, first).Return(nil).Once()
		mockRequestRepo.On("Update", ctx, second).Return(nil).Once()
		mockUoW.On("Commit", ctx).Return(nil).Once()
		mockUoW.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewTimeoutDeliveryRequestsCommandHandler(mockFactory, timeout, clock, slog.Default())

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, deliveryrequest.StatusTimedOut, first.Status())
		assert.Equal(t, deliveryrequest.StatusTimedOut, second.Status())
		mockUoW.AssertExpectations(t)
	})

	t.Run("should skip requests that lost the race to a courier answer", func(t *testing.T) {
		ctx := t.Context()
		contested := fixturePendingRequest(t, fixturePlacedOrder(t), fixtureOnShiftCourier(t))
		expired := fixturePendingRequest(t, fixturePlacedOrder(t), fixtureOnShiftCourier(t))

		cmd, err := commands.NewTimeoutDeliveryRequestsCommand()
		require.NoError(t, err)

		conflict := errs.NewConcurrencyConflictError("DeliveryRequest", contested.ID().String())
		_, mockRequestRepo, mockUoW, mockFactory := newDispatchMocks()

		mockUoW.On("Begin", ctx).Return(nil).Once()
		mockUoW.On("DeliveryRequestRepository").Return(mockRequestRepo).Once()
		mockRequestRepo.On("GetPendingRequestedBefore", ctx, now.Add(-timeout)).
			Return([]*deliveryrequest.DeliveryRequest{contested, expired}, nil).Once()
		mockRequestRepo.On("Update", ctx, contested).Return(conflict).Once()
		mockRequestRepo.On("Update", ctx, expired).Return(nil).Once()
		mockUoW.On("Commit", ctx).Return(nil).Once()
		mockUoW.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewTimeoutDeliveryRequestsCommandHandler(mockFactory, timeout, clock, slog.Default())

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, deliveryrequest.StatusTimedOut, expired.Status())
		mockUoW.AssertExpectations(t)
	})

	t.Run("empty sweep should commit cleanly", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewTimeoutDeliveryRequestsCommand()
		require.NoError(t, err)

		_, mockRequestRepo, mockUoW, mockFactory := newDispatchMocks()

		mockUoW.On("Begin", ctx).Return(nil).Once()
		mockUoW.On("DeliveryRequestRepository").Return(mockRequestRepo).Once()
		mockRequestRepo.On("GetPendingRequestedBefore", ctx, now.Add(-timeout)).
			Return([]*deliveryrequest.DeliveryRequest{}, nil).Once()
		mockUoW.On("Commit", ctx).Return(nil).Once()
		mockUoW.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewTimeoutDeliveryRequestsCommandHandler(mockFactory, timeout, clock, slog.Default())

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		mockUoW.AssertExpectations(t)
	})
}

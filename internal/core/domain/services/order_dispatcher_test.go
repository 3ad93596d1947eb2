package services_test

import (
	"testing"
	"time"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Pad Thai", 1, 1200)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Canal Street 12", []order.Item{item})
	require.NoError(t, err)
	o.ClearEvents()
	return o
}

func onShiftCourier(t *testing.T) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), "Sam Driver")
	require.NoError(t, err)
	c.StartShift()
	c.ClearEvents()
	return c
}

func locatedAt(t *testing.T, c *courier.Courier, observedAt time.Time) *courier.Courier {
	t.Helper()

	position, err := kernel.NewGeoPoint(48.85, 2.35)
	require.NoError(t, err)
	report, err := kernel.NewLocationReport(position, observedAt)
	require.NoError(t, err)
	require.NoError(t, c.UpdateLocation(report))
	c.ClearEvents()
	return c
}

func TestOrderDispatcher_SelectCourier(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("picks the least loaded courier", func(t *testing.T) {
		busy := onShiftCourier(t)
		idle := onShiftCourier(t)

		selected, err := dispatcher.SelectCourier(placedOrder(t), []services.CourierWorkload{
			{Courier: busy, Load: 3},
			{Courier: idle, Load: 0},
		})

		require.NoError(t, err)
		assert.True(t, idle.ID().IsEqual(selected.ID()))
	})

	t.Run("breaks load ties by freshest location", func(t *testing.T) {
		now := time.Now().UTC()
		stale := locatedAt(t, onShiftCourier(t), now.Add(-time.Hour))
		fresh := locatedAt(t, onShiftCourier(t), now)

		selected, err := dispatcher.SelectCourier(placedOrder(t), []services.CourierWorkload{
			{Courier: stale, Load: 1},
			{Courier: fresh, Load: 1},
		})

		require.NoError(t, err)
		assert.True(t, fresh.ID().IsEqual(selected.ID()))
	})

	t.Run("a located courier beats one without any report", func(t *testing.T) {
		unlocated := onShiftCourier(t)
		located := locatedAt(t, onShiftCourier(t), time.Now().UTC())

		selected, err := dispatcher.SelectCourier(placedOrder(t), []services.CourierWorkload{
			{Courier: unlocated, Load: 1},
			{Courier: located, Load: 1},
		})

		require.NoError(t, err)
		assert.True(t, located.ID().IsEqual(selected.ID()))
	})

	t.Run("skips couriers off shift", func(t *testing.T) {
		offShift := onShiftCourier(t)
		offShift.StopShift()
		working := onShiftCourier(t)

		selected, err := dispatcher.SelectCourier(placedOrder(t), []services.CourierWorkload{
			{Courier: offShift, Load: 0},
			{Courier: working, Load: 5},
		})

		require.NoError(t, err)
		assert.True(t, working.ID().IsEqual(selected.ID()))
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := dispatcher.SelectCourier(placedOrder(t), nil)

		assert.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("everyone off shift", func(t *testing.T) {
		resting := onShiftCourier(t)
		resting.StopShift()

		_, err := dispatcher.SelectCourier(placedOrder(t), []services.CourierWorkload{
			{Courier: resting, Load: 0},
		})

		assert.ErrorIs(t, err, services.ErrNoCourierAvailable)
	})

	t.Run("order already assigned", func(t *testing.T) {
		o := placedOrder(t)
		c := onShiftCourier(t)
		require.NoError(t, o.AcceptDeliveryRequest(c.ID()))

		_, err := dispatcher.SelectCourier(o, []services.CourierWorkload{
			{Courier: onShiftCourier(t), Load: 0},
		})

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

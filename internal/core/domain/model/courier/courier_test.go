package courier_test

import (
	"testing"
	"time"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/events"
	"mealdrop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReport(t *testing.T, latitude, longitude float64) kernel.LocationReport {
	t.Helper()
	position, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	report, err := kernel.NewLocationReport(position, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return report
}

func newCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), "Ada Wong")
	require.NoError(t, err)
	c.ClearEvents()
	return c
}

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()
	accountID := kernel.NewUUID()

	t.Run("should create valid courier with all valid parameters", func(t *testing.T) {
		c, err := courier.NewCourier(validID, accountID, "Ada Wong")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.True(t, c.AccountID().IsEqual(accountID))
		assert.Equal(t, "Ada Wong", c.FullName())
		assert.False(t, c.OnShift())
		assert.Nil(t, c.Location())
		assert.Equal(t, int64(1), c.Version())
	})

	t.Run("should raise CourierAdded", func(t *testing.T) {
		c, err := courier.NewCourier(validID, accountID, "Ada Wong")

		require.NoError(t, err)
		pending := c.Events()
		require.Len(t, pending, 1)
		added, ok := pending[0].(events.CourierAdded)
		require.True(t, ok)
		assert.True(t, added.CourierID.IsEqual(validID))
		assert.Equal(t, "Ada Wong", added.FullName)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := courier.NewCourier(invalidID, accountID, "Ada Wong")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(validID, accountID, "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, courier.ErrFullNameIsRequired)
	})
}

func TestCourierShift(t *testing.T) {
	t.Run("should start shift and raise an event", func(t *testing.T) {
		c := newCourier(t)

		c.StartShift()

		assert.True(t, c.OnShift())
		pending := c.Events()
		require.Len(t, pending, 1)
		assert.Equal(t, events.KindCourierShiftStarted, pending[0].Kind())
	})

	t.Run("starting an active shift should raise nothing", func(t *testing.T) {
		c := newCourier(t)
		c.StartShift()
		c.ClearEvents()

		c.StartShift()

		assert.True(t, c.OnShift())
		assert.Empty(t, c.Events())
	})

	t.Run("should stop shift and raise an event", func(t *testing.T) {
		c := newCourier(t)
		c.StartShift()
		c.ClearEvents()

		c.StopShift()

		assert.False(t, c.OnShift())
		pending := c.Events()
		require.Len(t, pending, 1)
		assert.Equal(t, events.KindCourierShiftStopped, pending[0].Kind())
	})

	t.Run("stopping an inactive shift should raise nothing", func(t *testing.T) {
		c := newCourier(t)

		c.StopShift()

		assert.False(t, c.OnShift())
		assert.Empty(t, c.Events())
	})
}

func TestCourierUpdateLocation(t *testing.T) {
	t.Run("should record the report and raise an event", func(t *testing.T) {
		c := newCourier(t)
		report := mustReport(t, 52.52, 13.405)

		err := c.UpdateLocation(report)

		require.NoError(t, err)
		require.NotNil(t, c.Location())
		assert.Equal(t, report.Position(), c.Location().Position())
		assert.Equal(t, report.ObservedAt(), c.Location().ObservedAt())

		pending := c.Events()
		require.Len(t, pending, 1)
		updated, ok := pending[0].(events.CourierLocationUpdated)
		require.True(t, ok)
		assert.Equal(t, report.Position(), updated.Position)
	})

	t.Run("should accept reports while off shift", func(t *testing.T) {
		c := newCourier(t)
		require.False(t, c.OnShift())

		err := c.UpdateLocation(mustReport(t, 48.85, 2.35))

		require.NoError(t, err)
		require.NotNil(t, c.Location())
	})

	t.Run("should overwrite the previous report", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.UpdateLocation(mustReport(t, 52.52, 13.405)))

		second := mustReport(t, 48.85, 2.35)
		require.NoError(t, c.UpdateLocation(second))

		assert.Equal(t, second.Position(), c.Location().Position())
		assert.Len(t, c.Events(), 2)
	})

	t.Run("should reject an unconstructed report", func(t *testing.T) {
		c := newCourier(t)
		var report kernel.LocationReport

		err := c.UpdateLocation(report)

		require.Error(t, err)
		assert.Nil(t, c.Location())
		assert.Empty(t, c.Events())
	})
}

func TestRestoreCourier(t *testing.T) {
	id := kernel.NewUUID()
	accountID := kernel.NewUUID()

	t.Run("should restore an on-shift courier with a location", func(t *testing.T) {
		report := mustReport(t, 52.52, 13.405)

		c, err := courier.RestoreCourier(id, accountID, "Ada Wong", true, &report, 7)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.OnShift())
		require.NotNil(t, c.Location())
		assert.Equal(t, report.Position(), c.Location().Position())
		assert.Equal(t, int64(7), c.Version())
		assert.Empty(t, c.Events())
	})

	t.Run("should restore a courier without a location", func(t *testing.T) {
		c, err := courier.RestoreCourier(id, accountID, "Ada Wong", false, nil, 1)

		require.NoError(t, err)
		assert.Nil(t, c.Location())
	})

	t.Run("should reject a non-positive version", func(t *testing.T) {
		c, err := courier.RestoreCourier(id, accountID, "Ada Wong", false, nil, 0)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCourierValidate(t *testing.T) {
	t.Run("should fail for zero value courier", func(t *testing.T) {
		var c courier.Courier

		assert.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})

	t.Run("should fail for nil courier", func(t *testing.T) {
		var c *courier.Courier

		assert.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

package kernel_test

import (
	"testing"
	"time"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(52.52, 13.405)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 52.52, p.Latitude(), 0.0001)
		assert.InDelta(t, 13.405, p.Longitude(), 0.0001)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		for _, tc := range []struct{ lat, lng float64 }{
			{-90, -180},
			{90, 180},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
			require.NoError(t, err)
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join errors for both coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		b, _ := kernel.NewGeoPoint(10, 20)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		b, _ := kernel.NewGeoPoint(10, 21)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("fails for unconstructed point", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("euclidean distance on raw coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(3, 4)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 5.0, d, 0.0001)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(1, 1)
		b, _ := kernel.NewGeoPoint(-2, 5)

		d1, err := a.DistanceTo(b)
		require.NoError(t, err)
		d2, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 0.0001)
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(42.1, 11.9)

		d, err := a.DistanceTo(a)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, d, 0.0001)
	})
}

func TestNewLocationReport(t *testing.T) {
	position, _ := kernel.NewGeoPoint(52.52, 13.405)

	t.Run("should create report with position and timestamp", func(t *testing.T) {
		observedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		r, err := kernel.NewLocationReport(position, observedAt)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, position, r.Position())
		assert.Equal(t, observedAt, r.ObservedAt())
	})

	t.Run("should reject unconstructed position", func(t *testing.T) {
		var p kernel.GeoPoint

		_, err := kernel.NewLocationReport(p, time.Now())

		require.Error(t, err)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := kernel.NewLocationReport(position, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value report is invalid", func(t *testing.T) {
		var r kernel.LocationReport

		require.Error(t, r.Validate())
	})
}

func TestUUID(t *testing.T) {
	t.Run("new UUID is valid and unique", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
		assert.True(t, a.IsEqual(a))
	})

	t.Run("zero UUID fails validation", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, id.Validate())
	})

	t.Run("round trip through string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})

	t.Run("round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("marshals to quoted canonical string", func(t *testing.T) {
		id := kernel.NewUUID()

		data, err := id.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t, `"`+id.String()+`"`, string(data))
	})
}

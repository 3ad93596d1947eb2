package order_test

import (
	"testing"

	"mealdrop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidation(t *testing.T) {
	t.Run("should accept all named statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusPlaced,
			order.StatusAssigned,
			order.StatusPickedUp,
			order.StatusDelivered,
		}

		for _, s := range statuses {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		var s order.Status

		err := s.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		s := order.Status(99)

		assert.Error(t, s.Validate())
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("should walk the full happy path", func(t *testing.T) {
		s := order.StatusPlaced

		s, err := s.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, s)

		s, err = s.PickUp()
		require.NoError(t, err)
		assert.Equal(t, order.StatusPickedUp, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, s)
	})

	t.Run("should release assigned back to placed", func(t *testing.T) {
		s, err := order.StatusAssigned.Release()

		require.NoError(t, err)
		assert.Equal(t, order.StatusPlaced, s)
	})

	t.Run("should not assign twice", func(t *testing.T) {
		_, err := order.StatusAssigned.Assign()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not pick up an unassigned order", func(t *testing.T) {
		_, err := order.StatusPlaced.PickUp()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not deliver before pickup", func(t *testing.T) {
		_, err := order.StatusAssigned.Deliver()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not leave the terminal status", func(t *testing.T) {
		_, err := order.StatusDelivered.Assign()
		assert.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.StatusDelivered.PickUp()
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not release a picked up order", func(t *testing.T) {
		_, err := order.StatusPickedUp.Release()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestPreparationStatusTransitions(t *testing.T) {
	t.Run("should walk the full preparation track", func(t *testing.T) {
		p := order.PreparationNotStarted

		p, err := p.Start()
		require.NoError(t, err)
		assert.Equal(t, order.PreparationActive, p)

		p, err = p.Finish()
		require.NoError(t, err)
		assert.Equal(t, order.PreparationCompleted, p)
	})

	t.Run("should not start twice", func(t *testing.T) {
		_, err := order.PreparationActive.Start()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not finish before starting", func(t *testing.T) {
		_, err := order.PreparationNotStarted.Finish()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should not restart a completed preparation", func(t *testing.T) {
		_, err := order.PreparationCompleted.Start()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

package queries_test

import (
	"testing"

	"mealdrop/internal/core/application/usecases/queries"
	"mealdrop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryConstruction(t *testing.T) {
	t.Run("get all couriers query should validate", func(t *testing.T) {
		query := queries.NewGetAllCouriersQuery()

		assert.NoError(t, query.Validate())
	})

	t.Run("zero value queries should not validate", func(t *testing.T) {
		assert.Error(t, queries.GetAllCouriersQuery{}.Validate())
		assert.Error(t, queries.GetCourierByAccountQuery{}.Validate())
		assert.Error(t, queries.GetCourierActiveOrdersQuery{}.Validate())
		assert.Error(t, queries.GetCourierPendingRequestsQuery{}.Validate())
	})

	t.Run("courier scoped queries should reject invalid IDs", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetCourierByAccountQuery(invalidID)
		assert.Error(t, err)

		_, err = queries.NewGetCourierActiveOrdersQuery(invalidID)
		assert.Error(t, err)

		_, err = queries.NewGetCourierPendingRequestsQuery(invalidID)
		assert.Error(t, err)
	})

	t.Run("courier scoped queries should carry the ID", func(t *testing.T) {
		courierID := kernel.NewUUID()

		query, err := queries.NewGetCourierActiveOrdersQuery(courierID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CourierID().IsEqual(courierID))
	})
}

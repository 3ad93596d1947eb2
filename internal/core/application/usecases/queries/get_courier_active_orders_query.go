package queries

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrGetCourierActiveOrdersQueryIsNotConstructed = errors.New(
	"GetCourierActiveOrdersQuery must be created via NewGetCourierActiveOrdersQuery constructor",
)

// GetCourierActiveOrdersQuery retrieves the orders a courier is currently
// delivering: assigned or picked up, not yet delivered. There is no
// order-list on the courier aggregate; this query joins from the order side.
type GetCourierActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierActiveOrdersQuery creates an active orders query.
func NewGetCourierActiveOrdersQuery(courierID kernel.UUID) (GetCourierActiveOrdersQuery, error) {
	query := GetCourierActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierActiveOrdersQueryIsNotConstructed)
}

// CourierID returns the courier ID from the query.
func (q GetCourierActiveOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierActiveOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// ActiveOrderResponse represents one order in a courier's worklist.
type ActiveOrderResponse struct {
	ID                kernel.UUID
	DeliveryAddress   string
	Status            string
	PreparationStatus string
	TotalAmount       int64
}

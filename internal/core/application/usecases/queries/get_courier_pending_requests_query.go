package queries

import (
	"errors"
	"time"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrGetCourierPendingRequestsQueryIsNotConstructed = errors.New(
	"GetCourierPendingRequestsQuery must be created via NewGetCourierPendingRequestsQuery constructor",
)

// GetCourierPendingRequestsQuery retrieves the unanswered delivery requests
// offered to a courier, joined with order context so the courier can decide.
type GetCourierPendingRequestsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierPendingRequestsQuery creates a pending requests query.
func NewGetCourierPendingRequestsQuery(courierID kernel.UUID) (GetCourierPendingRequestsQuery, error) {
	query := GetCourierPendingRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierPendingRequestsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierPendingRequestsQueryIsNotConstructed)
}

// CourierID returns the courier ID from the query.
func (q GetCourierPendingRequestsQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierPendingRequestsQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}

// PendingRequestResponse represents one open offer in a courier's inbox.
type PendingRequestResponse struct {
	RequestID       kernel.UUID
	OrderID         kernel.UUID
	RequestedAt     time.Time
	DeliveryAddress string
	TotalAmount     int64
}

package queries

import (
	"context"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierPendingRequestsQueryHandler retrieves a courier's open delivery
// offers with order context.
type GetCourierPendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierPendingRequestsQueryHandler creates a handler for offer inbox
// retrieval.
func NewGetCourierPendingRequestsQueryHandler(db *gorm.DB) GetCourierPendingRequestsQueryHandler {
	return GetCourierPendingRequestsQueryHandler{db: db}
}

// Handle executes the query, returning unanswered offers oldest first.
func (h GetCourierPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierPendingRequestsQuery,
) ([]PendingRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]PendingRequestResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.requested_at,
			o.delivery_address,
			COALESCE(SUM(i.quantity * i.unit_price), 0) AS total_amount
		FROM delivery_requests r
		JOIN orders o ON o.id = r.order_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE r.courier_id = ? AND r.status = ?
		GROUP BY r.id, r.order_id, r.requested_at, o.delivery_address
		ORDER BY r.requested_at
	`, query.CourierID().Bytes(), int(deliveryrequest.StatusRequested)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response  PendingRequestResponse
			requestID uuid.UUID
			orderID   uuid.UUID
		)

		if err = rows.Scan(&requestID, &orderID, &response.RequestedAt,
			&response.DeliveryAddress, &response.TotalAmount); err != nil {
			return nil, err
		}

		if response.RequestID, err = kernel.UUIDFromBytes(requestID[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		requests = append(requests, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

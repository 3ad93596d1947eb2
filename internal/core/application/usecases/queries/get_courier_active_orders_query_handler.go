package queries

import (
	"context"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierActiveOrdersQueryHandler retrieves a courier's undelivered
// orders with their totals.
type GetCourierActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierActiveOrdersQueryHandler creates a handler for courier
// worklist retrieval.
func NewGetCourierActiveOrdersQueryHandler(db *gorm.DB) GetCourierActiveOrdersQueryHandler {
	return GetCourierActiveOrdersQueryHandler{db: db}
}

// Handle executes the query, returning undelivered orders assigned to the
// courier, oldest first.
func (h GetCourierActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ActiveOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.delivery_address,
			o.status,
			o.preparation_status,
			COALESCE(SUM(i.quantity * i.unit_price), 0) AS total_amount
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.courier_id = ? AND o.status <> ?
		GROUP BY o.id, o.delivery_address, o.status, o.preparation_status, o.created_at
		ORDER BY o.created_at
	`, query.CourierID().Bytes(), int(order.StatusDelivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response   ActiveOrderResponse
			id         uuid.UUID
			status     int
			prepStatus int
		)

		if err = rows.Scan(&id, &response.DeliveryAddress, &status, &prepStatus, &response.TotalAmount); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID
		response.Status = order.Status(status).String()
		response.PreparationStatus = order.PreparationStatus(prepStatus).String()

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

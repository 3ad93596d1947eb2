package ports

import (
	"context"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the version the aggregate was read with; a concurrent
	// update surfaces as a concurrency conflict error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByCourier retrieves the orders assigned to the given courier
	// that are not yet delivered.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}

package ports

import (
	"context"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate. The write is
	// conditional on the version the aggregate was read with.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByAccountID retrieves the courier registered for the given user
	// account.
	GetByAccountID(ctx context.Context, accountID kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every registered courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}

package ports

import (
	"context"
	"time"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/kernel"
)

// DeliveryRequestRepository defines the persistence contract for delivery
// request aggregates.
type DeliveryRequestRepository interface {
	// Add persists a new delivery request to storage.
	Add(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error

	// Update persists changes to an existing delivery request. The write is
	// conditional on the version the aggregate was read with; racing
	// resolutions surface as a concurrency conflict error.
	Update(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error

	// Get retrieves a delivery request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryrequest.DeliveryRequest, error)

	// GetByOrderAndCourier retrieves the latest request offering the given
	// order to the given courier, resolved or not. Superseded requests are
	// retained for audit, so the newest row is the authoritative one.
	GetByOrderAndCourier(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) (*deliveryrequest.DeliveryRequest, error)

	// GetPendingByOrderAndCourier retrieves the unresolved request offering
	// the given order to the given courier.
	GetPendingByOrderAndCourier(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) (*deliveryrequest.DeliveryRequest, error)

	// GetPendingByCourier retrieves all unresolved requests offered to the
	// given courier.
	GetPendingByCourier(ctx context.Context, courierID kernel.UUID) ([]*deliveryrequest.DeliveryRequest, error)

	// GetPendingRequestedBefore retrieves all unresolved requests made
	// before the cutoff. The expiry sweep times these out.
	GetPendingRequestedBefore(ctx context.Context, cutoff time.Time) ([]*deliveryrequest.DeliveryRequest, error)
}

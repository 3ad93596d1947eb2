// Package requestrepo provides data transfer objects and mapping functions for
// delivery request persistence.
package requestrepo

import (
	"time"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryRequestDTO represents the database structure for persisting delivery
// request aggregates.
// The partial unique index enforces at most one unresolved offer per
// (order, courier) pair; resolved rows stay behind for audit and do not
// collide. The predicate value matches deliveryrequest.StatusRequested.
type DeliveryRequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index;index:idx_delivery_requests_pending_pair,unique,where:status = 1"`
	CourierID   uuid.UUID `gorm:"type:uuid;not null;index;index:idx_delivery_requests_pending_pair,unique,where:status = 1"`
	RequestedAt time.Time `gorm:"type:timestamptz;not null"`
	Status      int       `gorm:"type:int;not null;index"`
	Version     int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for delivery request entities.
// Overrides GORM's default naming convention to use "delivery_requests" instead
// of "delivery_request_dtos".
func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

// fromDomain converts a delivery request aggregate to its database representation.
func fromDomain(aggregate *deliveryrequest.DeliveryRequest) DeliveryRequestDTO {
	return DeliveryRequestDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CourierID:   aggregate.CourierID().Bytes(),
		RequestedAt: aggregate.RequestedAt(),
		Status:      int(aggregate.Status()),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to a delivery request aggregate.
// Reconstructs the aggregate with its persisted state using RestoreDeliveryRequest.
func toDomain(dto DeliveryRequestDTO) (*deliveryrequest.DeliveryRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return deliveryrequest.RestoreDeliveryRequest(
		id,
		orderID,
		courierID,
		dto.RequestedAt,
		deliveryrequest.Status(dto.Status),
		dto.Version,
	)
}

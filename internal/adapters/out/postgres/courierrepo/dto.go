// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The last reported location is stored denormalized; couriers that have never
// reported one carry NULL in all three location columns.
type CourierDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccountID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	FullName           string     `gorm:"type:varchar(255);not null"`
	OnShift            bool       `gorm:"type:boolean;not null"`
	LocationLat        *float64   `gorm:"type:double precision"`
	LocationLng        *float64   `gorm:"type:double precision"`
	LocationObservedAt *time.Time `gorm:"type:timestamptz"`
	Version            int64      `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:        courier.ID().Bytes(),
		AccountID: courier.AccountID().Bytes(),
		FullName:  courier.FullName(),
		OnShift:   courier.OnShift(),
		Version:   courier.Version(),
	}

	if loc := courier.Location(); loc != nil {
		lat := loc.Position().Latitude()
		lng := loc.Position().Longitude()
		observedAt := loc.ObservedAt()
		dto.LocationLat = &lat
		dto.LocationLng = &lng
		dto.LocationObservedAt = &observedAt
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate with its persisted state using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.LocationReport
	if dto.LocationLat != nil && dto.LocationLng != nil && dto.LocationObservedAt != nil {
		position, posErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if posErr != nil {
			return nil, posErr
		}

		report, repErr := kernel.NewLocationReport(position, *dto.LocationObservedAt)
		if repErr != nil {
			return nil, repErr
		}
		location = &report
	}

	return courier.RestoreCourier(id, accountID, dto.FullName, dto.OnShift, location, dto.Version)
}

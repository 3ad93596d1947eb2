package requestrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRequestRepository implements DeliveryRequestRepository using GORM.
type GormDeliveryRequestRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRequestRepository creates a new GORM delivery request repository.
func NewGormDeliveryRequestRepository(db *gorm.DB) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{db: db}
}

// Add saves a new delivery request to the database.
func (r *GormDeliveryRequestRepository) Add(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing delivery request to the database. The write is
// conditional on the version the aggregate was read with; racing resolutions
// surface as a concurrency conflict error.
func (r *GormDeliveryRequestRepository) Update(ctx context.Context, aggregate *deliveryrequest.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expectedVersion := aggregate.Version()
	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(map[string]any{
			"status":  dto.Status,
			"version": expectedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return resolveStaleWrite(ctx, r.db, aggregate.ID())
	}

	return nil
}

// Get retrieves a delivery request by ID from the database.
func (r *GormDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryrequest.DeliveryRequest, error) {
	var dto DeliveryRequestDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("deliveryRequestId", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndCourier retrieves the latest request offering the given order
// to the given courier, resolved or not. Superseded requests are retained for
// audit, so the newest row is the authoritative one.
func (r *GormDeliveryRequestRepository) GetByOrderAndCourier(
	ctx context.Context,
	orderID kernel.UUID,
	courierID kernel.UUID,
) (*deliveryrequest.DeliveryRequest, error) {
	var dto DeliveryRequestDTO

	err := r.db.WithContext(ctx).
		Where("order_id = ? AND courier_id = ?", orderID.Bytes(), courierID.Bytes()).
		Order("requested_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("deliveryRequest", pairID(orderID, courierID), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByOrderAndCourier retrieves the unresolved request offering the
// given order to the given courier.
func (r *GormDeliveryRequestRepository) GetPendingByOrderAndCourier(
	ctx context.Context,
	orderID kernel.UUID,
	courierID kernel.UUID,
) (*deliveryrequest.DeliveryRequest, error) {
	var dto DeliveryRequestDTO

	err := r.db.WithContext(ctx).
		Where("order_id = ? AND courier_id = ? AND status = ?",
			orderID.Bytes(), courierID.Bytes(), int(deliveryrequest.StatusRequested)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("deliveryRequest", pairID(orderID, courierID), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// pairID names the (order, courier) pair in not-found errors, since a request
// lookup by pair has no single identifier to report.
func pairID(orderID kernel.UUID, courierID kernel.UUID) string {
	return fmt.Sprintf("order %s, courier %s", orderID, courierID)
}

// GetPendingByCourier retrieves all unresolved requests offered to the given
// courier, oldest first.
func (r *GormDeliveryRequestRepository) GetPendingByCourier(ctx context.Context, courierID kernel.UUID) ([]*deliveryrequest.DeliveryRequest, error) {
	var dtos []DeliveryRequestDTO

	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND status = ?", courierID.Bytes(), int(deliveryrequest.StatusRequested)).
		Order("requested_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPendingRequestedBefore retrieves all unresolved requests made before the
// cutoff. The expiry sweep times these out.
func (r *GormDeliveryRequestRepository) GetPendingRequestedBefore(ctx context.Context, cutoff time.Time) ([]*deliveryrequest.DeliveryRequest, error) {
	var dtos []DeliveryRequestDTO

	err := r.db.WithContext(ctx).
		Where("status = ? AND requested_at < ?", int(deliveryrequest.StatusRequested), cutoff).
		Order("requested_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DeliveryRequestDTO) ([]*deliveryrequest.DeliveryRequest, error) {
	requests := make([]*deliveryrequest.DeliveryRequest, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, aggregate)
	}

	return requests, nil
}

// resolveStaleWrite distinguishes a version conflict from a missing row after
// a conditional update touched nothing.
func resolveStaleWrite(ctx context.Context, db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.WithContext(ctx).Model(&DeliveryRequestDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("deliveryRequestId", id)
	}

	return errs.NewConcurrencyConflictError("deliveryRequest", id)
}

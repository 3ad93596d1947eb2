package orderrepo

import (
	"context"
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. Line items are immutable
// after placement, so only the orders row is written. The write is conditional
// on the version the aggregate was read with; a lost race surfaces as a
// concurrency conflict error.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expectedVersion := aggregate.Version()
	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(map[string]any{
			"status":             dto.Status,
			"preparation_status": dto.PreparationStatus,
			"courier_id":         dto.CourierID,
			"version":            expectedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return resolveStaleWrite(ctx, r.db, aggregate.ID())
	}

	return nil
}

// Get retrieves an order by ID from the database.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO

	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orderId", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByCourier retrieves the orders assigned to the given courier that
// have not been delivered yet, oldest first.
func (r *GormOrderRepository) GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO

	err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		Where("courier_id = ? AND status <> ?", courierID.Bytes(), int(order.StatusDelivered)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// orderByPosition keeps preloaded line items in checkout order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// resolveStaleWrite distinguishes a version conflict from a missing row after
// a conditional update touched nothing.
func resolveStaleWrite(ctx context.Context, db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return errs.NewConcurrencyConflictError("order", id)
}

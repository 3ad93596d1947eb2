package courierrepo

import (
	"context"
	"errors"

	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing courier to the database. The write is conditional
// on the version the aggregate was read with; a lost race surfaces as a
// concurrency conflict error.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expectedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return resolveStaleWrite(ctx, r.db, aggregate.ID())
	}

	return nil
}

// Get retrieves a courier by ID from the database.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	var dto CourierDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("courierId", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAccountID retrieves the courier registered for the given user account.
func (r *GormCourierRepository) GetByAccountID(ctx context.Context, accountID kernel.UUID) (*courier.Courier, error) {
	var dto CourierDTO

	err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("accountId", accountID, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered courier.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO

	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, aggregate)
	}

	return couriers, nil
}

// resolveStaleWrite distinguishes a version conflict from a missing row after
// a conditional update touched nothing.
func resolveStaleWrite(ctx context.Context, db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("courierId", id)
	}

	return errs.NewConcurrencyConflictError("courier", id)
}

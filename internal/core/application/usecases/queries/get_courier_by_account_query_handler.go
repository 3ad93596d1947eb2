package queries

import (
	"context"
	"database/sql"
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierByAccountQueryHandler looks up a courier profile by the backing
// user account.
type GetCourierByAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierByAccountQueryHandler creates a handler for profile lookups.
func NewGetCourierByAccountQueryHandler(db *gorm.DB) GetCourierByAccountQueryHandler {
	return GetCourierByAccountQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// courier is registered for the account.
func (h GetCourierByAccountQueryHandler) Handle(
	ctx context.Context,
	query GetCourierByAccountQuery,
) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			on_shift,
			location_lat,
			location_lng
		FROM couriers
		WHERE account_id = ?
	`, query.AccountID().Bytes()).Row()

	var (
		courier  CourierResponse
		id       uuid.UUID
		lat, lng sql.NullFloat64
	)

	err := row.Scan(&id, &courier.FullName, &courier.OnShift, &lat, &lng)
	if errors.Is(err, sql.ErrNoRows) {
		return CourierResponse{}, errs.NewObjectNotFoundError("accountId", query.AccountID().String())
	}
	if err != nil {
		return CourierResponse{}, err
	}

	courierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CourierResponse{}, err
	}
	courier.ID = courierID

	if lat.Valid && lng.Valid {
		position, posErr := kernel.NewGeoPoint(lat.Float64, lng.Float64)
		if posErr != nil {
			return CourierResponse{}, posErr
		}
		courier.Location = &position
	}

	return courier, nil
}

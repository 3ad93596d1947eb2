package queries

import (
	"context"
	"database/sql"

	"mealdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves all courier information from the
// database. Uses direct SQL for read performance in the CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier listing.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query, returning couriers sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			on_shift,
			location_lat,
			location_lng
		FROM couriers
		ORDER BY full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		courier, scanErr := scanCourierRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}

func scanCourierRow(rows *sql.Rows) (CourierResponse, error) {
	var (
		courier  CourierResponse
		id       uuid.UUID
		lat, lng sql.NullFloat64
	)

	if err := rows.Scan(&id, &courier.FullName, &courier.OnShift, &lat, &lng); err != nil {
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

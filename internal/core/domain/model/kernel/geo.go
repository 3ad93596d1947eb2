package kernel

import (
	"errors"
	"fmt"
	"math"
	"time"

	"mealdrop/internal/pkg/errs"
	"mealdrop/internal/pkg/guard"
)

// Valid ranges for geographic coordinates in decimal degrees.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. Points must be created via NewGeoPoint to guarantee valid bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// ErrLocationReportIsNotConstructed is returned when using an improperly
// initialized LocationReport.
var ErrLocationReportIsNotConstructed = errs.NewValueIsRequiredError(
	"location report must be created via NewLocationReport constructor")

// ErrObservedAtIsRequired is returned when a location report carries no timestamp.
var ErrObservedAtIsRequired = errs.NewValueIsRequiredError("observedAt")

// GeoPoint is an immutable 2D coordinate in decimal degrees.
// The zero value is invalid; use NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates.
// Latitude must lie in [-90, 90] and longitude in [-180, 180]; out-of-range
// values produce a validation error.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.latitude, p.longitude)
}

// IsEqual compares two points for exact coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceTo returns the Euclidean distance on raw coordinates.
// This is a scalar proxy for physical distance, not a geodesic distance:
// it ignores Earth's curvature and degree/metre scaling. Good enough for
// relative comparisons, a known limitation for anything else.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := p.latitude - other.latitude
	dLng := p.longitude - other.longitude
	return math.Sqrt(dLat*dLat + dLng*dLng), nil
}

// MarshalJSON encodes the point as {"latitude":…,"longitude":…}.
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"latitude":%g,"longitude":%g}`, p.latitude, p.longitude), nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}

// LocationReport is a timestamped location sample reported by a courier.
// Reports are immutable: a courier's location is always replaced wholesale
// with a fresh report, never mutated in place.
type LocationReport struct {
	position   GeoPoint
	observedAt time.Time
	guard      guard.ConstructorGuard
}

// NewLocationReport creates a report of a position observed at the given time.
// The position must be a constructed GeoPoint and observedAt must be non-zero.
func NewLocationReport(position GeoPoint, observedAt time.Time) (LocationReport, error) {
	if err := position.Validate(); err != nil {
		return LocationReport{}, err
	}
	if observedAt.IsZero() {
		return LocationReport{}, ErrObservedAtIsRequired
	}

	return LocationReport{
		position:   position,
		observedAt: observedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the report was created via NewLocationReport.
func (r LocationReport) Validate() error {
	return r.guard.Validate(ErrLocationReportIsNotConstructed)
}

// Position returns the sampled coordinate.
func (r LocationReport) Position() GeoPoint {
	return r.position
}

// ObservedAt returns the time the sample was taken.
func (r LocationReport) ObservedAt() time.Time {
	return r.observedAt
}

package kernel

import (
	"fmt"

	"mealdrop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one
// of the constructor functions. Returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identity value object used by every aggregate in the model.
// It wraps github.com/google/uuid to keep the external type out of domain
// signatures and to make zero values detectable: the zero UUID is invalid and
// fails Validate, so identities always come from a constructor.
//
// UUID is immutable and safe for concurrent use.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID. This is the primary way to
// mint identities for new aggregates.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its textual representation. Accepts the
// standard formats understood by github.com/google/uuid. Used when identities
// arrive from HTTP paths or other external systems.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, typically when an
// identity is restored from binary storage. The result must pass validation
// (the nil UUID is rejected).
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence adapters.
// Domain code should not need this accessor.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalJSON encodes the UUID as its canonical string. Needed because the
// wrapped value is unexported and domain events carrying identities are
// serialized for external consumers.
func (u UUID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.id.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical UUID string and rejects the nil UUID.
func (u *UUID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid UUID format: %w", err)
	}

	u.id = id
	return u.Validate()
}

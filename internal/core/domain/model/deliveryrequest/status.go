package deliveryrequest

import (
	"errors"
	"fmt"

	"mealdrop/internal/pkg/errs"
)

// ErrAlreadyResolved is returned when accepting, rejecting, or timing out a
// request that already reached a terminal status.
var ErrAlreadyResolved = errors.New("delivery request is already resolved")

// ErrAlreadyRequested is returned when offering an order to a courier who
// already has an unresolved request for it. One pending offer per
// (order, courier) pair.
var ErrAlreadyRequested = errors.New("delivery request is already pending for this order and courier")

// Status enumerates the delivery request lifecycle. Requested is the only
// non-terminal status; the three resolutions are mutually exclusive and
// final.
type Status int

const (
	StatusUnknown Status = iota
	StatusRequested
	StatusAccepted
	StatusRejected
	StatusTimedOut
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusRequested: "Requested",
		StatusAccepted:  "Accepted",
		StatusRejected:  "Rejected",
		StatusTimedOut:  "TimedOut",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		StatusRequested: "Requested",
		StatusAccepted:  "Accepted",
		StatusRejected:  "Rejected",
		StatusTimedOut:  "TimedOut",
	}
}

// Validate rejects StatusUnknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery request status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is one of the three resolutions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusTimedOut:
		return true
	default:
		return false
	}
}

func (s Status) resolve(target Status) (Status, error) {
	if s != StatusRequested {
		return 0, fmt.Errorf("%w: cannot resolve to %s from %s", ErrAlreadyResolved, target, s)
	}
	return target, nil
}

package order

import (
	"fmt"

	"mealdrop/internal/pkg/errs"
)

// PreparationStatus is the restaurant-owned preparation track of an order.
// It advances NotStarted -> Active -> Completed independently of the
// courier track: a restaurant may start cooking before any courier accepted
// the delivery, and finish after pickup never happens.
type PreparationStatus int

const (
	// PreparationUnknown represents an invalid or undefined preparation status.
	PreparationUnknown PreparationStatus = iota

	// PreparationNotStarted is the initial preparation status at checkout.
	PreparationNotStarted

	// PreparationActive indicates the restaurant is preparing the order.
	PreparationActive

	// PreparationCompleted indicates preparation finished; terminal.
	PreparationCompleted
)

func getPreparationStatusStrings() map[PreparationStatus]string {
	return map[PreparationStatus]string{
		PreparationUnknown:    "Unknown",
		PreparationNotStarted: "NotStarted",
		PreparationActive:     "Active",
		PreparationCompleted:  "Completed",
	}
}

// Validate rejects PreparationUnknown and any out-of-range value.
func (s PreparationStatus) Validate() error {
	switch s {
	case PreparationNotStarted, PreparationActive, PreparationCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("preparationStatus",
			fmt.Errorf("%d is not a valid preparation status", s))
	}
}

// String implements fmt.Stringer; safe on any value.
func (s PreparationStatus) String() string {
	if str, ok := getPreparationStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions NotStarted -> Active.
func (s PreparationStatus) Start() (PreparationStatus, error) {
	if s != PreparationNotStarted {
		return 0, fmt.Errorf("%w: cannot start preparation in status %s", ErrInvalidTransition, s)
	}
	return PreparationActive, nil
}

// Finish transitions Active -> Completed.
func (s PreparationStatus) Finish() (PreparationStatus, error) {
	if s != PreparationActive {
		return 0, fmt.Errorf("%w: cannot finish preparation in status %s", ErrInvalidTransition, s)
	}
	return PreparationCompleted, nil
}

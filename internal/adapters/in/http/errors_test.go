package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"mealdrop/internal/core/domain/model/basket"
	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/core/domain/services"
	"mealdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", "x"), http.StatusNotFound},
		{"concurrency conflict", errs.NewConcurrencyConflictError("order", "x"), http.StatusConflict},
		{"invalid transition", fmt.Errorf("%w: cannot pick up", order.ErrInvalidTransition), http.StatusConflict},
		{"wrong courier", order.ErrNotAssignedToCourier, http.StatusConflict},
		{"already resolved", deliveryrequest.ErrAlreadyResolved, http.StatusConflict},
		{"already requested", deliveryrequest.ErrAlreadyRequested, http.StatusConflict},
		{"off shift", courier.ErrCourierOffShift, http.StatusConflict},
		{"no courier available", services.ErrNoCourierAvailable, http.StatusConflict},
		{"empty basket", basket.ErrBasketIsEmpty, http.StatusUnprocessableEntity},
		{"below minimum", fmt.Errorf("%w: total 100, minimum 500", basket.ErrBelowMinimumOrder), http.StatusUnprocessableEntity},
		{"missing value", errs.NewValueIsRequiredError("fullName"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 200, 1, 100), http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestParseUUID(t *testing.T) {
	t.Run("valid value round trips", func(t *testing.T) {
		id, err := parseUUID("orderId", "b3f7c9aa-3d1e-4a7b-9f6e-2c8d5e4a1b0c")

		assert.NoError(t, err)
		assert.Equal(t, "b3f7c9aa-3d1e-4a7b-9f6e-2c8d5e4a1b0c", id.String())
	})

	t.Run("garbage is a validation error", func(t *testing.T) {
		_, err := parseUUID("orderId", "not-a-uuid")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

package http

import (
	"errors"
	"net/http"

	"mealdrop/internal/core/domain/model/basket"
	"mealdrop/internal/core/domain/model/courier"
	"mealdrop/internal/core/domain/model/deliveryrequest"
	"mealdrop/internal/core/domain/model/order"
	"mealdrop/internal/core/domain/services"
	"mealdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain and application errors to HTTP status codes. Anything
// unclassified is a server fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotAssignedToCourier),
		errors.Is(err, deliveryrequest.ErrAlreadyResolved),
		errors.Is(err, deliveryrequest.ErrAlreadyRequested),
		errors.Is(err, courier.ErrCourierOffShift),
		errors.Is(err, services.ErrNoCourierAvailable):
		return http.StatusConflict

	case errors.Is(err, basket.ErrBasketIsEmpty),
		errors.Is(err, basket.ErrBelowMinimumOrder):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for a failed request. Internal faults are
// not echoed back to the client.
func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

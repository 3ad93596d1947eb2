// Package errs provides the standardized error taxonomy for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the domain model, the application services, and
// the persistence adapters.
//
// Error kinds:
//   - ObjectNotFoundError: a lookup matched nothing (carries the missing identifier)
//   - ValueIsInvalidError: a value failed business validation
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - VersionIsInvalidError: a malformed aggregate version
//   - ConcurrencyConflictError: an optimistic-lock failure at commit time
//
// Each kind follows the same shape: a sentinel error variable (e.g.
// ErrObjectNotFound), a struct with the error details, constructors with and
// without a cause, an Error() formatting method, and an Unwrap() method so
// errors.Is can classify any error against its sentinel.
//
// ConcurrencyConflictError is deliberately separate from the validation kinds:
// it tells the caller "retry, the state moved under you" rather than "your
// request was wrong", and transport layers map the two classes to different
// status codes.
package errs

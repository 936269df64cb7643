package domain

import (
	"errors"
	"fmt"
)

// Validation errors raised while building domain values.
var (
	// ErrInvalidAirportCode is returned when an origin or destination is not a 3-letter code.
	ErrInvalidAirportCode = errors.New("invalid airport code")

	// ErrInvalidPassenger is returned when a passenger name is empty.
	ErrInvalidPassenger = errors.New("invalid passenger")

	// ErrInvalidFlight is returned when a flight definition is unusable (e.g. no seats).
	ErrInvalidFlight = errors.New("invalid flight")

	// ErrMalformedRecord is returned when a catalog record cannot be parsed.
	ErrMalformedRecord = errors.New("malformed catalog record")

	// ErrMalformedTransaction is returned when a transaction record cannot be parsed.
	ErrMalformedTransaction = errors.New("malformed transaction")
)

// Reasons a transaction is dropped. In best-effort mode they are only recorded;
// in strict mode they are returned to the caller.
var (
	ErrUnknownTransaction  = errors.New("unknown transaction kind")
	ErrRouteNotFound       = errors.New("route not found")
	ErrRouteFull           = errors.New("all flights on route are full")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyBooked       = errors.New("passenger already booked on flight")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, sentinel error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     sentinel,
	}
}

// IsDropReason reports whether err explains why a transaction was dropped
// rather than a failure of the ledger itself.
func IsDropReason(err error) bool {
	return errors.Is(err, ErrUnknownTransaction) ||
		errors.Is(err, ErrRouteNotFound) ||
		errors.Is(err, ErrRouteFull) ||
		errors.Is(err, ErrFlightNotFound) ||
		errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrAlreadyBooked) ||
		errors.Is(err, ErrMalformedTransaction) ||
		errors.Is(err, ErrInvalidAirportCode) ||
		errors.Is(err, ErrInvalidPassenger)
}

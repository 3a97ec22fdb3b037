// Package booking implements the reservation engine: request validation,
// reservation lifecycle orchestration, and the derivation of property
// availability and calendar views from reservation data.  Everything in
// this package is synchronous; persistence goes through the Store
// interface and all other functions are pure computations over values
// the caller already holds.
package booking

import "errors"

// Sentinel errors returned by the validator and the service.  Callers
// distinguish failure kinds with errors.Is and translate them into
// HTTP status codes at the boundary.
var (
	// ErrPastDate is returned when a start or end date lies before the
	// validation instant.
	ErrPastDate = errors.New("date is in the past")

	// ErrInvalidRange is returned when the end date does not strictly
	// follow the start date.
	ErrInvalidRange = errors.New("end date must be after start date")

	// ErrInvalidGuestCount is returned when the guest count is zero or
	// negative.
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")

	// ErrClientNotFound is returned when a reservation references a
	// client that does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrReservationNotFound is returned when the requested reservation
	// does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrPropertyNotFound is returned when the requested property does
	// not exist.
	ErrPropertyNotFound = errors.New("property not found")
)

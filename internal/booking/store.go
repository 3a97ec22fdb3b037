package booking

import (
	"context"

	"github.com/iliyamo/property-reservation/internal/model"
)

// Store is the persistence contract the reservation service depends on.
// The engine never talks to a concrete database; implementations live
// outside this package (MySQL repositories in production, an in-memory
// fake in tests).  Implementations map their own "no rows" conditions to
// ErrClientNotFound / ErrReservationNotFound so the service can rely on
// errors.Is.
type Store interface {
	// GetClient returns the client with the given ID or ErrClientNotFound.
	GetClient(ctx context.Context, id string) (model.Client, error)

	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, r model.Reservation) error

	// GetReservation returns a reservation or ErrReservationNotFound.
	GetReservation(ctx context.Context, id string) (model.Reservation, error)

	// ListReservations returns every reservation.
	ListReservations(ctx context.Context) ([]model.Reservation, error)

	// ListReservationsByClient returns the reservations held by a client.
	ListReservationsByClient(ctx context.Context, clientID string) ([]model.Reservation, error)

	// ListReservationsByProperty returns the reservations assigned to a
	// property.
	ListReservationsByProperty(ctx context.Context, propertyID string) ([]model.Reservation, error)

	// UpdateReservation overwrites an existing reservation.
	UpdateReservation(ctx context.Context, r model.Reservation) error

	// DeleteReservation removes a reservation permanently.  It returns
	// ErrReservationNotFound when no row matched.
	DeleteReservation(ctx context.Context, id string) error
}

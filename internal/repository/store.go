package repository

import (
	"context"
	"errors"

	"github.com/iliyamo/property-reservation/internal/booking"
	"github.com/iliyamo/property-reservation/internal/model"
)

// Store adapts the MySQL repositories to the booking engine's
// persistence contract.  It translates repository sentinels into the
// engine's error vocabulary so the service can rely on errors.Is
// without knowing about this package.
type Store struct {
	Clients      *ClientRepo
	Reservations *ReservationRepo
}

// NewStore builds a booking.Store over the given repositories.
func NewStore(clients *ClientRepo, reservations *ReservationRepo) *Store {
	if clients == nil || reservations == nil {
		panic("nil repository passed to NewStore")
	}
	return &Store{Clients: clients, Reservations: reservations}
}

var _ booking.Store = (*Store)(nil)

func (s *Store) GetClient(ctx context.Context, id string) (model.Client, error) {
	c, err := s.Clients.GetByID(ctx, id)
	if errors.Is(err, ErrClientNotFound) {
		return model.Client{}, booking.ErrClientNotFound
	}
	return c, err
}

func (s *Store) SaveReservation(ctx context.Context, r model.Reservation) error {
	return s.Reservations.Create(ctx, r)
}

func (s *Store) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	r, err := s.Reservations.GetByID(ctx, id)
	if errors.Is(err, ErrReservationNotFound) {
		return model.Reservation{}, booking.ErrReservationNotFound
	}
	return r, err
}

func (s *Store) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.Reservations.List(ctx)
}

func (s *Store) ListReservationsByClient(ctx context.Context, clientID string) ([]model.Reservation, error) {
	return s.Reservations.ListByClient(ctx, clientID)
}

func (s *Store) ListReservationsByProperty(ctx context.Context, propertyID string) ([]model.Reservation, error) {
	return s.Reservations.ListByProperty(ctx, propertyID)
}

func (s *Store) UpdateReservation(ctx context.Context, r model.Reservation) error {
	err := s.Reservations.Update(ctx, r)
	if errors.Is(err, ErrReservationNotFound) {
		return booking.ErrReservationNotFound
	}
	return err
}

func (s *Store) DeleteReservation(ctx context.Context, id string) error {
	err := s.Reservations.Delete(ctx, id)
	if errors.Is(err, ErrReservationNotFound) {
		return booking.ErrReservationNotFound
	}
	return err
}

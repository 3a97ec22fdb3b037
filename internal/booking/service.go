package booking

import (
	"context"
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

// Service coordinates validation, existence checks and persistence for
// reservations.  It is the only component that writes through the Store.
// The clock and ID generator are injected at construction so tests can
// pin time and identifiers without process-wide state.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService builds a Service.  It panics on nil dependencies, matching
// how handlers treat missing repositories: wiring bugs should fail at
// startup, not at request time.
func NewService(store Store, now func() time.Time, newID func() string) *Service {
	if store == nil || now == nil || newID == nil {
		panic("nil dependency passed to booking.NewService")
	}
	return &Service{store: store, now: now, newID: newID}
}

// Create validates the request, verifies the client exists, and persists
// a new pending reservation.  No side effects occur before validation
// succeeds.  The materialized reservation is returned.
func (s *Service) Create(ctx context.Context, req CreateRequest) (model.Reservation, error) {
	now := s.now().UTC()
	if _, err := s.store.GetClient(ctx, req.ClientID); err != nil {
		return model.Reservation{}, err
	}
	if err := ValidateCreation(req.StartDate, req.EndDate, req.Guests, now); err != nil {
		return model.Reservation{}, err
	}
	r := model.Reservation{
		ID:         s.newID(),
		ClientID:   req.ClientID,
		PropertyID: req.PropertyID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TimeOfDay:  req.TimeOfDay,
		Guests:     req.Guests,
		Status:     model.StatusPending,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.SaveReservation(ctx, r); err != nil {
		return model.Reservation{}, err
	}
	return r, nil
}

// Update loads the reservation, validates the patch against it, merges
// the patched fields over the stored record and persists the result.
// UpdatedAt always strictly increases: if the clock has not moved past
// the stored stamp the new stamp is bumped by a millisecond.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (model.Reservation, error) {
	existing, err := s.store.GetReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	now := s.now().UTC()
	if err := ValidateUpdate(existing, patch, now); err != nil {
		return model.Reservation{}, err
	}
	merged := patch.apply(existing)
	if !now.After(existing.UpdatedAt) {
		now = existing.UpdatedAt.Add(time.Millisecond)
	}
	merged.UpdatedAt = now
	if err := s.store.UpdateReservation(ctx, merged); err != nil {
		return model.Reservation{}, err
	}
	return merged, nil
}

// Delete removes a reservation permanently.  It reports true when a
// record was deleted and ErrReservationNotFound when none existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := s.store.GetReservation(ctx, id); err != nil {
		return false, err
	}
	if err := s.store.DeleteReservation(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// Confirm is a status-only update to confirmed.  By the update-skip rule
// it never re-validates dates.
func (s *Service) Confirm(ctx context.Context, id string) (model.Reservation, error) {
	status := model.StatusConfirmed
	return s.Update(ctx, id, Patch{Status: &status})
}

// Cancel is a status-only update to cancelled.
func (s *Service) Cancel(ctx context.Context, id string) (model.Reservation, error) {
	status := model.StatusCancelled
	return s.Update(ctx, id, Patch{Status: &status})
}

// Get is a pass-through to the store.
func (s *Service) Get(ctx context.Context, id string) (model.Reservation, error) {
	return s.store.GetReservation(ctx, id)
}

// List is a pass-through to the store.
func (s *Service) List(ctx context.Context) ([]model.Reservation, error) {
	return s.store.ListReservations(ctx)
}

// ListByClient is a pass-through to the store.
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]model.Reservation, error) {
	return s.store.ListReservationsByClient(ctx, clientID)
}

// ListByProperty is a pass-through to the store.
func (s *Service) ListByProperty(ctx context.Context, propertyID string) ([]model.Reservation, error) {
	return s.store.ListReservationsByProperty(ctx, propertyID)
}

package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/property-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Rows use
// 32-char hex primary keys generated by the service layer; property_id
// is nullable because a reservation can exist before a unit is
// assigned.  All timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, client_id, property_id, start_date, end_date, time_of_day,
	guests, status, notes, created_at, updated_at`

func scanReservation(scan func(dest ...any) error) (model.Reservation, error) {
	var (
		r          model.Reservation
		propertyID sql.NullString
		timeOfDay  sql.NullString
		notes      sql.NullString
	)
	err := scan(&r.ID, &r.ClientID, &propertyID, &r.StartDate, &r.EndDate,
		&timeOfDay, &r.Guests, &r.Status, &notes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	if propertyID.Valid {
		pid := propertyID.String
		r.PropertyID = &pid
	}
	r.TimeOfDay = timeOfDay.String
	r.Notes = notes.String
	return r, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// Create inserts a new reservation row.
func (r *ReservationRepo) Create(ctx context.Context, res model.Reservation) error {
	const q = `INSERT INTO reservations
		(id, client_id, property_id, start_date, end_date, time_of_day, guests, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, res.ID, res.ClientID, nullableString(res.PropertyID),
		res.StartDate, res.EndDate, res.TimeOfDay, res.Guests, res.Status, res.Notes,
		res.CreatedAt, res.UpdatedAt)
	return err
}

// GetByID returns a reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id=? LIMIT 1", id)
	res, err := scanReservation(row.Scan)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrReservationNotFound
	}
	return res, err
}

func (r *ReservationRepo) list(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// List returns all reservations ordered by start date.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations ORDER BY start_date, id")
}

// ListByClient returns the reservations held by a client.
func (r *ReservationRepo) ListByClient(ctx context.Context, clientID string) ([]model.Reservation, error) {
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE client_id=? ORDER BY start_date, id",
		clientID)
}

// ListByProperty returns the reservations assigned to a property.
func (r *ReservationRepo) ListByProperty(ctx context.Context, propertyID string) ([]model.Reservation, error) {
	return r.list(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE property_id=? ORDER BY start_date, id",
		propertyID)
}

// Update overwrites a reservation row.  The service always persists the
// full merged record, so every mutable column is set.
func (r *ReservationRepo) Update(ctx context.Context, res model.Reservation) error {
	const q = `UPDATE reservations SET client_id=?, property_id=?, start_date=?, end_date=?,
		time_of_day=?, guests=?, status=?, notes=?, updated_at=?
		WHERE id=?`
	result, err := r.db.ExecContext(ctx, q, res.ClientID, nullableString(res.PropertyID),
		res.StartDate, res.EndDate, res.TimeOfDay, res.Guests, res.Status, res.Notes,
		res.UpdatedAt, res.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, getErr := r.GetByID(ctx, res.ID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes a reservation permanently.
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

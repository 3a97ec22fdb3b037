package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/property-reservation/internal/model"
)

// ClientRepo provides CRUD operations for clients.  The clients table
// carries a unique index on email; violations surface as ErrEmailExists.
// All timestamp columns are stored in UTC.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo returns a ClientRepo bound to the given database.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

const clientColumns = "id, name, email, phone, created_at, updated_at"

// Create inserts a new client row.
func (r *ClientRepo) Create(ctx context.Context, c model.Client) error {
	const q = `INSERT INTO clients (id, name, email, phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt)
	if isDuplicateKey(err) {
		return ErrEmailExists
	}
	return err
}

// GetByID returns a client or ErrClientNotFound.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (model.Client, error) {
	var c model.Client
	err := r.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id=? LIMIT 1", id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Client{}, ErrClientNotFound
	}
	return c, err
}

// List returns all clients ordered by creation time, newest first.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update overwrites the mutable fields (name, email, phone) and the
// update timestamp.  Returns ErrClientNotFound when no row matched and
// ErrEmailExists when the new email collides with another client.
func (r *ClientRepo) Update(ctx context.Context, c model.Client) error {
	const q = `UPDATE clients SET name=?, email=?, phone=?, updated_at=? WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.UpdatedAt, c.ID)
	if isDuplicateKey(err) {
		return ErrEmailExists
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row is missing or the update was a no-op; a cheap
		// existence probe tells them apart.
		if _, getErr := r.GetByID(ctx, c.ID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes a client permanently.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClientNotFound
	}
	return nil
}

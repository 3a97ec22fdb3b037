package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/iliyamo/property-reservation/internal/model"
)

// PropertyRepo provides CRUD operations for properties.  The amenities
// list is stored as a JSON column; the remaining specification fields
// map to plain columns.  All timestamps are stored in UTC.
type PropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepo returns a PropertyRepo bound to the given database.
func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{db: db} }

const propertyColumns = `id, name, description, type, area, capacity, bedrooms, bathrooms,
	amenities, location, nightly_price, availability, created_at, updated_at`

func scanProperty(scan func(dest ...any) error) (model.Property, error) {
	var (
		p         model.Property
		amenities []byte
	)
	err := scan(&p.ID, &p.Name, &p.Description, &p.Spec.Type, &p.Spec.Area,
		&p.Spec.Capacity, &p.Spec.Bedrooms, &p.Spec.Bathrooms,
		&amenities, &p.Spec.Location, &p.NightlyPrice, &p.Availability,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Property{}, err
	}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &p.Spec.Amenities); err != nil {
			return model.Property{}, err
		}
	}
	return p, nil
}

// Create inserts a new property row.
func (r *PropertyRepo) Create(ctx context.Context, p model.Property) error {
	amenities, err := json.Marshal(p.Spec.Amenities)
	if err != nil {
		return err
	}
	const q = `INSERT INTO properties
		(id, name, description, type, area, capacity, bedrooms, bathrooms, amenities, location, nightly_price, availability, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q, p.ID, p.Name, p.Description, p.Spec.Type,
		p.Spec.Area, p.Spec.Capacity, p.Spec.Bedrooms, p.Spec.Bathrooms,
		amenities, p.Spec.Location, p.NightlyPrice, p.Availability,
		p.CreatedAt, p.UpdatedAt)
	return err
}

// GetByID returns a property or ErrPropertyNotFound.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (model.Property, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE id=? LIMIT 1", id)
	p, err := scanProperty(row.Scan)
	if err == sql.ErrNoRows {
		return model.Property{}, ErrPropertyNotFound
	}
	return p, err
}

// List returns all properties ordered by name.
func (r *PropertyRepo) List(ctx context.Context) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+propertyColumns+" FROM properties ORDER BY name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update overwrites a property row.  Returns ErrPropertyNotFound when no
// row matched.
func (r *PropertyRepo) Update(ctx context.Context, p model.Property) error {
	amenities, err := json.Marshal(p.Spec.Amenities)
	if err != nil {
		return err
	}
	const q = `UPDATE properties SET name=?, description=?, type=?, area=?, capacity=?,
		bedrooms=?, bathrooms=?, amenities=?, location=?, nightly_price=?, availability=?, updated_at=?
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Description, p.Spec.Type, p.Spec.Area,
		p.Spec.Capacity, p.Spec.Bedrooms, p.Spec.Bathrooms, amenities, p.Spec.Location,
		p.NightlyPrice, p.Availability, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, getErr := r.GetByID(ctx, p.ID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes a property permanently.
func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM properties WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

package repository

import (
	"context"
	"strings"
)

// PropertySearchQuery defines filters & pagination for browsing properties.
type PropertySearchQuery struct {
	Name         string
	Location     string
	Type         string
	Availability string
	MinCapacity  int
	MaxPrice     float64
	Page         int
	PageSize     int
}

// PublicPropertyRow is the slimmed-down projection returned to guests.
type PublicPropertyRow struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Location     string  `json:"location"`
	Capacity     int     `json:"capacity"`
	Bedrooms     int     `json:"bedrooms"`
	NightlyPrice float64 `json:"nightly_price"`
	Availability string  `json:"availability"`
}

// Search returns the matching page of properties and the total match
// count.  Text filters use case-insensitive LIKE, numeric filters are
// inclusive bounds.
func (r *PropertyRepo) Search(ctx context.Context, q PropertySearchQuery) ([]PublicPropertyRow, int64, error) {
	where := []string{}
	args := []any{}

	if q.Name != "" {
		where = append(where, "LOWER(p.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Location != "" {
		where = append(where, "LOWER(p.location) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Type != "" {
		where = append(where, "LOWER(p.type) = ?")
		args = append(args, strings.ToLower(q.Type))
	}
	if q.Availability != "" {
		where = append(where, "p.availability = ?")
		args = append(args, q.Availability)
	}
	if q.MinCapacity > 0 {
		where = append(where, "p.capacity >= ?")
		args = append(args, q.MinCapacity)
	}
	if q.MaxPrice > 0 {
		where = append(where, "p.nightly_price <= ?")
		args = append(args, q.MaxPrice)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM properties p WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT p.id, p.name, p.type, p.location, p.capacity, p.bedrooms, p.nightly_price, p.availability
		FROM properties p
		WHERE ` + cond + `
		ORDER BY p.name, p.id
		LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, dataSQL, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]PublicPropertyRow, 0, limit)
	for rows.Next() {
		var row PublicPropertyRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Type, &row.Location,
			&row.Capacity, &row.Bedrooms, &row.NightlyPrice, &row.Availability); err != nil {
			return nil, 0, err
		}
		out = append(out, row)
	}
	return out, total, rows.Err()
}

package booking

import (
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

// CreateRequest carries the fields needed to create a reservation.
// PropertyID may be nil when no unit has been assigned yet.
type CreateRequest struct {
	ClientID   string  `json:"client_id"`
	PropertyID *string `json:"property_id,omitempty"`
	StartDate  time.Time `json:"date"`
	EndDate    time.Time `json:"end_date"`
	TimeOfDay  string    `json:"time,omitempty"`
	Guests     int       `json:"number_of_guests"`
	Notes      string    `json:"notes,omitempty"`
}

// Patch describes a partial reservation update.  Every field is
// independently optional: nil means "leave unchanged".  A patch that
// sets only Status skips date and guest validation entirely, so a
// reservation whose dates have since lapsed can still be confirmed or
// cancelled.
type Patch struct {
	PropertyID *string    `json:"property_id,omitempty"`
	StartDate  *time.Time `json:"date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	TimeOfDay  *string    `json:"time,omitempty"`
	Guests     *int       `json:"number_of_guests,omitempty"`
	Status     *string    `json:"status,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// touchesSchedule reports whether the patch modifies any field covered
// by temporal or guest validation.
func (p Patch) touchesSchedule() bool {
	return p.StartDate != nil || p.EndDate != nil || p.Guests != nil
}

// apply merges the patch over an existing reservation and returns the
// merged copy.  It does not stamp UpdatedAt; the service owns that.
func (p Patch) apply(r model.Reservation) model.Reservation {
	if p.PropertyID != nil {
		r.PropertyID = p.PropertyID
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	if p.TimeOfDay != nil {
		r.TimeOfDay = *p.TimeOfDay
	}
	if p.Guests != nil {
		r.Guests = *p.Guests
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	return r
}

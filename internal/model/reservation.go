package model

import "time"

// Reservation lifecycle states.  A reservation is created pending and
// moves to confirmed or cancelled through explicit operations; completed
// marks a stay that has finished.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Reservation is a time-bound booking of a property by a client.
//
// StartDate marks check-in and EndDate the checkout instant: occupancy
// covers [StartDate, EndDate) and EndDate must be strictly after
// StartDate.  PropertyID is optional so a reservation can be taken
// before a unit is assigned.  All timestamps are UTC.
type Reservation struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	PropertyID *string   `json:"property_id,omitempty"`
	StartDate  time.Time `json:"date"`
	EndDate    time.Time `json:"end_date"`
	TimeOfDay  string    `json:"time,omitempty"`
	Guests     int       `json:"number_of_guests"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ForProperty reports whether the reservation is assigned to the given
// property.
func (r Reservation) ForProperty(propertyID string) bool {
	return r.PropertyID != nil && *r.PropertyID == propertyID
}

package model

import "time"

// Availability states a property can be placed in by its manager.  The
// flag is coarse and independent of reservations; AvailabilityMaintenance
// overrides any booking-derived availability.
const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
	AvailabilityReserved    = "reserved"
	AvailabilityMaintenance = "maintenance"
)

// PropertySpec bundles the physical description of a property.
// Field surface follows common listing data: type of place, floor area,
// guest capacity, room counts, amenities and a free-form location.
type PropertySpec struct {
	Type      string   `json:"type"`
	Area      float64  `json:"area"`
	Capacity  int      `json:"capacity"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Amenities []string `json:"amenities"`
	Location  string   `json:"location"`
}

// Property is a bookable unit.  Its reservation history is never stored
// on the record itself; it is always recomputed from the reservation set
// filtered by PropertyID.
type Property struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Spec         PropertySpec `json:"spec"`
	NightlyPrice float64      `json:"nightly_price"`
	Availability string       `json:"availability"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

package booking

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

// AvailabilityInfo is the point-in-time occupancy state of a property,
// derived purely from its reservation set.
type AvailabilityInfo struct {
	IsAvailable       bool               `json:"is_available"`
	CurrentBooking    *model.Reservation `json:"current_booking,omitempty"`
	DurationDays      int                `json:"duration_days,omitempty"`
	BookedUntil       *time.Time         `json:"booked_until,omitempty"`
	NextBooking       *model.Reservation `json:"next_booking,omitempty"`
	NextAvailableDate *time.Time         `json:"next_available_date,omitempty"`
}

// PropertyAvailabilityDisplay is the human-readable projection of an
// AvailabilityInfo for one property.
type PropertyAvailabilityDisplay struct {
	PropertyID  string `json:"property_id"`
	Name        string `json:"name"`
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message"`
}

// isActive reports whether a reservation participates in availability:
// pending or confirmed, with an end date that has not already passed.
func isActive(r model.Reservation, now time.Time) bool {
	if r.Status != model.StatusPending && r.Status != model.StatusConfirmed {
		return false
	}
	return !r.EndDate.Before(now)
}

// sortByStart orders reservations ascending by start date.  Ties on the
// start date break by reservation ID so the result is stable regardless
// of input order.
func sortByStart(rs []model.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].StartDate.Equal(rs[j].StartDate) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].StartDate.Before(rs[j].StartDate)
	})
}

// DurationDays returns the length of a booking in whole days, rounding
// partial days up.  Any valid interval yields at least 1.  Malformed
// intervals already in storage (end before start) are tolerated and
// clamp to 0 rather than failing.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	days := int(math.Ceil(d.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// CalculateAvailability derives a property's availability at instant now
// from the given reservations.  Reservations for other properties,
// cancelled or completed ones, and those whose end date has passed are
// ignored.  The current booking is the first active reservation (sorted
// by start date) whose closed interval [start, end] contains now; the
// next booking is the first active reservation starting strictly after
// now, excluding the current one.  A maintenance flag on the property
// forces unavailability regardless of bookings.
func CalculateAvailability(p model.Property, reservations []model.Reservation, now time.Time) AvailabilityInfo {
	active := make([]model.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ForProperty(p.ID) && isActive(r, now) {
			active = append(active, r)
		}
	}
	sortByStart(active)

	var current, next *model.Reservation
	for i := range active {
		r := &active[i]
		if current == nil && !now.Before(r.StartDate) && !now.After(r.EndDate) {
			current = r
			continue
		}
		if next == nil && r.StartDate.After(now) {
			next = r
		}
	}

	info := AvailabilityInfo{}
	switch {
	case current != nil:
		info.CurrentBooking = current
		info.DurationDays = DurationDays(current.StartDate, current.EndDate)
		until := current.EndDate
		info.BookedUntil = &until
		info.NextBooking = next
		// Whether a gap follows the current booking or the next one is
		// back-to-back, the projected free date is the day after the
		// current checkout.  Both branches intentionally resolve to the
		// same value for compatibility with long-standing behavior.
		var free time.Time
		if next != nil && next.EndDate.After(current.EndDate) {
			free = current.EndDate.AddDate(0, 0, 1)
		} else {
			free = current.EndDate.AddDate(0, 0, 1)
		}
		info.NextAvailableDate = &free
	case next != nil:
		// Free right now but occupied from the next booking's start.
		// Callers must not read this as available indefinitely.
		info.IsAvailable = true
		info.NextBooking = next
		start := next.StartDate
		info.NextAvailableDate = &start
	default:
		info.IsAvailable = p.Availability != model.AvailabilityMaintenance
		free := now
		info.NextAvailableDate = &free
	}

	if p.Availability == model.AvailabilityMaintenance {
		info.IsAvailable = false
	}
	return info
}

// AvailabilityDisplay maps an AvailabilityInfo to a display record with
// a per-case message.  It is pure and cannot fail.
func AvailabilityDisplay(p model.Property, info AvailabilityInfo) PropertyAvailabilityDisplay {
	d := PropertyAvailabilityDisplay{
		PropertyID:  p.ID,
		Name:        p.Name,
		IsAvailable: info.IsAvailable,
	}
	switch {
	case p.Availability == model.AvailabilityMaintenance:
		d.Message = "Under maintenance and not taking bookings"
	case info.CurrentBooking != nil:
		d.Message = fmt.Sprintf("Booked for %d day(s); available from %s",
			info.DurationDays, info.NextAvailableDate.Format("2006-01-02"))
	case info.IsAvailable && info.NextBooking == nil:
		d.Message = "Available now"
	case info.NextAvailableDate != nil:
		d.Message = fmt.Sprintf("Will be available on %s",
			info.NextAvailableDate.Format("2006-01-02"))
	default:
		d.Message = "Not available"
	}
	return d
}

// PropertiesAvailability computes one display record per property, in
// input order, filtering the global reservation list per property.
func PropertiesAvailability(properties []model.Property, reservations []model.Reservation, now time.Time) []PropertyAvailabilityDisplay {
	out := make([]PropertyAvailabilityDisplay, 0, len(properties))
	for _, p := range properties {
		mine := make([]model.Reservation, 0)
		for _, r := range reservations {
			if r.ForProperty(p.ID) {
				mine = append(mine, r)
			}
		}
		info := CalculateAvailability(p, mine, now)
		out = append(out, AvailabilityDisplay(p, info))
	}
	return out
}

package booking

import (
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

// ValidateCreation checks a candidate reservation's date range and guest
// count against a single "now" snapshot.  Checks fail fast in a fixed
// order: past start, past end, inverted range, guest count.  Success is
// the absence of an error.
func ValidateCreation(start, end time.Time, guests int, now time.Time) error {
	if start.Before(now) {
		return ErrPastDate
	}
	if end.Before(now) {
		return ErrPastDate
	}
	if !end.After(start) {
		return ErrInvalidRange
	}
	if guests <= 0 {
		return ErrInvalidGuestCount
	}
	return nil
}

// ValidateUpdate runs the creation checks against only the fields a
// patch supplies.  When just one side of the range is patched, the
// ordering check compares it against the other side already stored on
// the existing record.  Patches that touch neither dates nor guests
// (status, notes, time of day) skip every check: confirming or
// cancelling a reservation whose dates have since lapsed must not fail.
func ValidateUpdate(existing model.Reservation, patch Patch, now time.Time) error {
	if !patch.touchesSchedule() {
		return nil
	}
	start := existing.StartDate
	if patch.StartDate != nil {
		start = *patch.StartDate
		if start.Before(now) {
			return ErrPastDate
		}
	}
	end := existing.EndDate
	if patch.EndDate != nil {
		end = *patch.EndDate
		if end.Before(now) {
			return ErrPastDate
		}
	}
	if (patch.StartDate != nil || patch.EndDate != nil) && !end.After(start) {
		return ErrInvalidRange
	}
	if patch.Guests != nil && *patch.Guests <= 0 {
		return ErrInvalidGuestCount
	}
	return nil
}

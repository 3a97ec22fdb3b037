package booking

import (
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

// CalendarDay classifies a single date in a projection window.  At most
// one of IsPast, IsToday applies to the date itself; IsReserved and
// IsAvailable describe occupancy.  Reservation points at the booking
// covering the day, when one exists, for downstream display.
type CalendarDay struct {
	Date        time.Time          `json:"date"`
	IsPast      bool               `json:"is_past"`
	IsToday     bool               `json:"is_today"`
	IsReserved  bool               `json:"is_reserved"`
	IsAvailable bool               `json:"is_available"`
	Reservation *model.Reservation `json:"reservation,omitempty"`
}

// midnight truncates t to the start of its day in UTC.
func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GenerateCalendar classifies every day from start for weeks*7 days.
// Day matching against reservations uses the half-open occupancy
// interval [start, end): check-in day is reserved, checkout day is not.
// Reservations are scanned in input order and the first match wins.  A
// day is available when it is not past, not reserved, and the property
// flag is "available".  The function never mutates its arguments and is
// deterministic for identical inputs.
func GenerateCalendar(p model.Property, reservations []model.Reservation, start time.Time, weeks int, now time.Time) []CalendarDay {
	today := midnight(now)
	days := weeks * 7
	out := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		day := midnight(start).AddDate(0, 0, i)
		cd := CalendarDay{
			Date:    day,
			IsPast:  day.Before(today),
			IsToday: day.Equal(today),
		}
		for j := range reservations {
			r := &reservations[j]
			if !r.ForProperty(p.ID) {
				continue
			}
			if !day.Before(midnight(r.StartDate)) && day.Before(midnight(r.EndDate)) {
				cd.IsReserved = true
				cd.Reservation = r
				break
			}
		}
		cd.IsAvailable = !cd.IsPast && !cd.IsReserved && p.Availability == model.AvailabilityAvailable
		out = append(out, cd)
	}
	return out
}

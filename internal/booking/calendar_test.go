package booking

import (
	"testing"
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

func TestGenerateCalendarWindowLength(t *testing.T) {
	p := testProperty(model.AvailabilityAvailable)
	got := GenerateCalendar(p, nil, testNow, 3, testNow)
	if len(got) != 21 {
		t.Fatalf("got %d days, want 21", len(got))
	}
}

func TestGenerateCalendarReservedDays(t *testing.T) {
	p := testProperty(model.AvailabilityAvailable)
	// Two occupied nights: check-in on day 2, checkout on day 4.  The
	// half-open interval marks exactly days 2 and 3 reserved.
	r := reservation("r1", model.StatusConfirmed, days(2), days(4))
	cal := GenerateCalendar(p, []model.Reservation{r}, testNow, 1, testNow)
	if len(cal) != 7 {
		t.Fatalf("got %d days, want 7", len(cal))
	}
	reserved := 0
	for i, d := range cal {
		if d.IsReserved {
			reserved++
			if i != 2 && i != 3 {
				t.Fatalf("day %d unexpectedly reserved", i)
			}
			if d.Reservation == nil || d.Reservation.ID != "r1" {
				t.Fatalf("day %d missing reservation reference", i)
			}
			if d.IsAvailable {
				t.Fatalf("day %d both reserved and available", i)
			}
		}
	}
	if reserved != 2 {
		t.Fatalf("reserved %d days, want 2", reserved)
	}
	// Everything else in the window is in the future and unreserved.
	for i, d := range cal {
		if i == 2 || i == 3 || i == 0 {
			continue
		}
		if !d.IsAvailable {
			t.Fatalf("day %d should be available", i)
		}
	}
}

func TestGenerateCalendarPastAndToday(t *testing.T) {
	p := testProperty(model.AvailabilityAvailable)
	start := days(-3)
	cal := GenerateCalendar(p, nil, start, 1, testNow)
	for i, d := range cal {
		switch {
		case i < 3:
			if !d.IsPast || d.IsToday || d.IsAvailable {
				t.Fatalf("day %d: want past-only, got %+v", i, d)
			}
		case i == 3:
			if !d.IsToday || d.IsPast {
				t.Fatalf("day %d: want today, got %+v", i, d)
			}
		default:
			if d.IsPast || d.IsToday || !d.IsAvailable {
				t.Fatalf("day %d: want future available, got %+v", i, d)
			}
		}
	}
}

func TestGenerateCalendarUnavailableProperty(t *testing.T) {
	p := testProperty(model.AvailabilityUnavailable)
	cal := GenerateCalendar(p, nil, days(1), 1, testNow)
	for i, d := range cal {
		if d.IsAvailable {
			t.Fatalf("day %d available on an unavailable property", i)
		}
	}
}

func TestGenerateCalendarFirstMatchWins(t *testing.T) {
	p := testProperty(model.AvailabilityAvailable)
	first := reservation("zz-late-id", model.StatusConfirmed, days(1), days(3))
	second := reservation("aa-early-id", model.StatusPending, days(1), days(3))
	cal := GenerateCalendar(p, []model.Reservation{first, second}, days(1), 1, testNow)
	if cal[0].Reservation == nil || cal[0].Reservation.ID != "zz-late-id" {
		t.Fatalf("expected input-order first match, got %+v", cal[0].Reservation)
	}
}

func TestGenerateCalendarNormalizesTimes(t *testing.T) {
	p := testProperty(model.AvailabilityAvailable)
	// A reservation starting mid-afternoon still reserves its check-in day.
	r := reservation("r1", model.StatusConfirmed,
		days(1).Add(15*time.Hour), days(2).Add(11*time.Hour))
	cal := GenerateCalendar(p, []model.Reservation{r}, days(0), 1, testNow)
	if !cal[1].IsReserved {
		t.Fatal("check-in day not reserved")
	}
	if cal[2].IsReserved {
		t.Fatal("checkout day should not be reserved")
	}
}

package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/property-reservation/internal/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func days(n int) time.Time { return testNow.AddDate(0, 0, n) }

func TestValidateCreation(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		end    time.Time
		guests int
		want   error
	}{
		{"valid future range", days(1), days(3), 2, nil},
		{"start in the past", days(-1), days(3), 2, ErrPastDate},
		{"end in the past", days(1), days(-2), 2, ErrPastDate},
		{"end equals start", days(2), days(2), 2, ErrInvalidRange},
		{"end before start", days(3), days(1), 2, ErrInvalidRange},
		{"zero guests", days(1), days(3), 0, ErrInvalidGuestCount},
		{"negative guests", days(1), days(3), -4, ErrInvalidGuestCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreation(tc.start, tc.end, tc.guests, testNow)
			if !errors.Is(err, tc.want) && !(err == nil && tc.want == nil) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateCreationChecksPastBeforeRange(t *testing.T) {
	// Both dates in the past and inverted: the past-date check wins.
	if err := ValidateCreation(days(-1), days(-3), 2, testNow); !errors.Is(err, ErrPastDate) {
		t.Fatalf("got %v, want ErrPastDate", err)
	}
}

func TestValidateUpdatePartialRange(t *testing.T) {
	existing := model.Reservation{
		StartDate: days(5),
		EndDate:   days(8),
		Guests:    2,
		Status:    model.StatusPending,
	}

	// Patching only the end compares against the stored start.
	badEnd := days(4)
	if err := ValidateUpdate(existing, Patch{EndDate: &badEnd}, testNow); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("end before stored start: got %v, want ErrInvalidRange", err)
	}
	goodEnd := days(10)
	if err := ValidateUpdate(existing, Patch{EndDate: &goodEnd}, testNow); err != nil {
		t.Fatalf("valid end patch: got %v", err)
	}

	// Patching only the start compares against the stored end.
	badStart := days(9)
	if err := ValidateUpdate(existing, Patch{StartDate: &badStart}, testNow); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("start after stored end: got %v, want ErrInvalidRange", err)
	}
	pastStart := days(-1)
	if err := ValidateUpdate(existing, Patch{StartDate: &pastStart}, testNow); !errors.Is(err, ErrPastDate) {
		t.Fatalf("past start patch: got %v, want ErrPastDate", err)
	}

	zero := 0
	if err := ValidateUpdate(existing, Patch{Guests: &zero}, testNow); !errors.Is(err, ErrInvalidGuestCount) {
		t.Fatalf("zero guest patch: got %v, want ErrInvalidGuestCount", err)
	}
}

func TestValidateUpdateStatusOnlySkipsDateChecks(t *testing.T) {
	// The stored dates lapsed long ago; a status-only patch must still pass.
	existing := model.Reservation{
		StartDate: days(-30),
		EndDate:   days(-27),
		Guests:    2,
		Status:    model.StatusPending,
	}
	status := model.StatusConfirmed
	if err := ValidateUpdate(existing, Patch{Status: &status}, testNow); err != nil {
		t.Fatalf("status-only patch on lapsed dates: got %v", err)
	}
	notes := "late checkout requested"
	if err := ValidateUpdate(existing, Patch{Notes: &notes}, testNow); err != nil {
		t.Fatalf("notes-only patch on lapsed dates: got %v", err)
	}
}

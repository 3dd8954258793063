package domain

import "testing"

func TestNextDayWraparound(t *testing.T) {
	cases := []struct {
		in   Date
		want Date
	}{
		{"31/12/2024", "01/01/2025"},
		{"28/02/2024", "01/03/2024"}, // leap years are not modeled
		{"30/04/2025", "01/05/2025"},
	}

	for _, c := range cases {
		got := NextDay(c.in)
		if got != c.want {
			t.Errorf("NextDay(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCompareDates(t *testing.T) {
	if CompareDates("01/05/2025", "02/05/2025") >= 0 {
		t.Errorf("expected 01/05/2025 < 02/05/2025")
	}
	if CompareDates("02/05/2025", "01/05/2025") <= 0 {
		t.Errorf("expected 02/05/2025 > 01/05/2025")
	}
	if CompareDates("01/05/2025", "01/05/2025") != 0 {
		t.Errorf("expected equal dates to compare as 0")
	}
}

func TestDaysBetweenSafetyCeiling(t *testing.T) {
	// A date far enough in the future that repeated NextDay stepping
	// would exceed the 365-iteration ceiling.
	got := DaysBetween("01/01/2020", "01/01/2030")
	if got != daysBetweenSafetyCeiling {
		t.Errorf("DaysBetween = %d, want safety ceiling %d", got, daysBetweenSafetyCeiling)
	}
}

func TestLayoverHoursSameDay(t *testing.T) {
	arriving := Leg{Date: "01/05/2025", ArrivalTime: "16:00"}
	departing := Leg{Date: "01/05/2025", DepartureTime: "18:00"}

	got := LayoverHours(arriving, departing)
	if got != 2 {
		t.Errorf("LayoverHours = %d, want 2", got)
	}
}

func TestLayoverHoursAcrossDays(t *testing.T) {
	// Arrives 01/05 23:00, departs 03/05 06:00: 1h to midnight, one full
	// 24h day, then 6h.
	arriving := Leg{Date: "01/05/2025", ArrivalTime: "23:00"}
	departing := Leg{Date: "03/05/2025", DepartureTime: "06:00"}

	got := LayoverHours(arriving, departing)
	if got != 31 {
		t.Errorf("LayoverHours = %d, want 31", got)
	}
}

func TestIsBefore(t *testing.T) {
	if !IsBefore("08:00", "09:00") {
		t.Errorf("expected 08:00 before 09:00")
	}
	if IsBefore("09:00", "08:00") {
		t.Errorf("expected 09:00 not before 08:00")
	}
	if IsBefore("08:00", "08:00") {
		t.Errorf("expected equal times not before each other")
	}
}

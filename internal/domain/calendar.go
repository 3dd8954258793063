package domain

import (
	"fmt"
	"strconv"
)

// Date is a calendar date in DD/MM/YYYY form. No timezone is modeled.
type Date string

// Clock is a 24-hour HH:MM time of day.
type Clock string

// daysInMonth fixes February at 28 days; leap years are not modeled.
// This mirrors the original engine's simplification and is intentional.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBetweenSafetyCeiling bounds nextDay iteration in daysBetween so a
// malformed or far-future date can never spin the calendar forever.
const daysBetweenSafetyCeiling = 365

func splitDate(d Date) (day, month, year int, err error) {
	s := string(d)
	if len(s) != 10 || s[2] != '/' || s[5] != '/' {
		return 0, 0, 0, fmt.Errorf("calendar: malformed date %q", s)
	}
	day, err = strconv.Atoi(s[0:2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("calendar: malformed day in %q: %w", s, err)
	}
	month, err = strconv.Atoi(s[3:5])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("calendar: malformed month in %q: %w", s, err)
	}
	year, err = strconv.Atoi(s[6:10])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("calendar: malformed year in %q: %w", s, err)
	}
	return day, month, year, nil
}

func formatDate(day, month, year int) Date {
	return Date(fmt.Sprintf("%02d/%02d/%04d", day, month, year))
}

func splitClock(c Clock) (hour, minute int, err error) {
	s := string(c)
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("calendar: malformed time %q", s)
	}
	hour, err = strconv.Atoi(s[0:2])
	if err != nil {
		return 0, 0, fmt.Errorf("calendar: malformed hour in %q: %w", s, err)
	}
	minute, err = strconv.Atoi(s[3:5])
	if err != nil {
		return 0, 0, fmt.Errorf("calendar: malformed minute in %q: %w", s, err)
	}
	return hour, minute, nil
}

// minutesOfDay returns minutes elapsed since 00:00 for a Clock value.
// A malformed clock collapses to 0 rather than panicking; callers operate
// on fixture-sourced data that is expected to already be well-formed.
func minutesOfDay(c Clock) int {
	h, m, err := splitClock(c)
	if err != nil {
		return 0
	}
	return h*60 + m
}

// CompareDates returns <0, 0, >0 as a < b, a == b, a > b, lexicographic on
// (year, month, day).
func CompareDates(a, b Date) int {
	ay, am, ad := dateSortKey(a)
	by, bm, bd := dateSortKey(b)
	if ay != by {
		return ay - by
	}
	if am != bm {
		return am - bm
	}
	return ad - bd
}

func dateSortKey(d Date) (year, month, day int) {
	day, month, year, err := splitDate(d)
	if err != nil {
		return 0, 0, 0
	}
	return year, month, day
}

// NextDay advances a date by exactly one day. February is fixed at 28
// days; leap years are deliberately not modeled (see design notes).
func NextDay(d Date) Date {
	day, month, year, err := splitDate(d)
	if err != nil {
		return d
	}

	day++
	if day > daysInMonth[month-1] {
		day = 1
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return formatDate(day, month, year)
}

// DaysBetween returns the non-negative number of NextDay steps from from
// to to, capped at daysBetweenSafetyCeiling.
func DaysBetween(from, to Date) int {
	if from == to {
		return 0
	}

	current := from
	days := 0
	for current != to {
		current = NextDay(current)
		days++
		if days >= daysBetweenSafetyCeiling {
			return daysBetweenSafetyCeiling
		}
	}
	return days
}

// IsBefore reports whether t1 is strictly earlier than t2.
func IsBefore(t1, t2 Clock) bool {
	return minutesOfDay(t1) < minutesOfDay(t2)
}

// LayoverHours computes the whole hours a vessel waits at the port shared
// by arriving.Destination and departing.Origin, truncated toward zero.
func LayoverHours(arriving, departing Leg) int {
	arrMinutes := minutesOfDay(arriving.ArrivalTime)
	depMinutes := minutesOfDay(departing.DepartureTime)

	if arriving.Date == departing.Date {
		if depMinutes < arrMinutes {
			return 0
		}
		return (depMinutes - arrMinutes) / 60
	}

	deltaDays := DaysBetween(arriving.Date, departing.Date)
	hoursToMidnight := ceilDiv(1440-arrMinutes, 60)
	fullDaysWaiting := (deltaDays - 1) * 24
	hoursFromMidnight := depMinutes / 60

	return hoursToMidnight + fullDaysWaiting + hoursFromMidnight
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

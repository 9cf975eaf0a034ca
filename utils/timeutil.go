package utils

import (
	"fmt"
	"time"
)

// Clock values are minutes from midnight (e.g., 420 for 7:00 AM). All times in
// the system are naive local wall-clock: no timezone conversion is performed,
// a date string and a clock value together mean "that time on that day at the
// salon". Dates travel as "YYYY-MM-DD" strings.

const (
	DateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// ParseClock converts an "HH:MM" (24-hour, zero-padded) string to minutes from midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ValidClock reports whether m is a representable time of day.
func ValidClock(m int) bool {
	return m >= 0 && m < minutesPerDay
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not conflict, so a booking
// starting exactly when another ends is allowed.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// ParseDate parses a "YYYY-MM-DD" calendar date in the process-local location.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// CombineDateClock returns the absolute local time for a date string plus
// minutes from midnight.
func CombineDateClock(date string, clock int) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(clock) * time.Minute), nil
}

package timex

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidClock is returned when a wall-clock string is not "HH:MM"
// or is out of range.
var ErrInvalidClock = errors.New("invalid clock value, expected HH:MM")

// Clock is a wall-clock time of day without a date.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String formats the clock back to "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// At anchors the clock on the calendar day of t, in t's location.
func (c Clock) At(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// BeforeLimit reports whether now is strictly before the "HH:MM" limit
// on now's calendar day. A malformed limit never blocks the user.
func BeforeLimit(now time.Time, limit string) bool {
	c, err := ParseClock(limit)
	if err != nil {
		return true
	}
	return now.Before(c.At(now))
}

// UntilLimit returns the whole hours and minutes remaining from now until
// today's "HH:MM" limit. ok is false when the limit has already passed or
// the limit string is malformed.
func UntilLimit(now time.Time, limit string) (hours, minutes int, ok bool) {
	c, err := ParseClock(limit)
	if err != nil {
		return 0, 0, false
	}
	d := c.At(now).Sub(now)
	if d <= 0 {
		return 0, 0, false
	}
	return int(d / time.Hour), int(d % time.Hour / time.Minute), true
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameWeek reports whether a and b fall in the same week of the same year.
// Weeks are counted the way the mobile app counts them: days elapsed since
// January 1st, offset by that day's weekday, divided into blocks of seven.
func SameWeek(a, b time.Time) bool {
	return a.Year() == b.Year() && weekNumber(a) == weekNumber(b)
}

func weekNumber(t time.Time) int {
	firstDay := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.Sub(firstDay).Hours() / 24
	return int(math.Ceil((pastDays + float64(firstDay.Weekday()) + 1) / 7))
}

// MondayOfWeek returns the Monday of t's week at midnight. Sunday belongs
// to the week that started the previous Monday.
func MondayOfWeek(t time.Time) time.Time {
	day := t
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// Tomorrow returns midnight of the day after now.
func Tomorrow(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// FormatISODate renders t as "YYYY-MM-DD".
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseISODate parses a "YYYY-MM-DD" string in the local time zone.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

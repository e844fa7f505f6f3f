// Package calendar works with calendar dates rendered as YYYY-MM-DD strings.
// Dates in this form sort lexicographically in chronological order, which the
// rest of daybook relies on for cheap comparisons.
package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// LayoutISO is the on-disk and wire format of every date in daybook.
	LayoutISO = "2006-01-02"

	layoutShort     = "Jan 2"
	layoutShortYear = "Jan 2, 2006"
)

// ErrMalformedDate is returned when a date string is not YYYY-MM-DD.
var ErrMalformedDate = errors.New("calendar: malformed date")

// Clock supplies the current instant. Its location decides what "today" is.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns time.Now in the local zone.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (f FixedClock) Now() time.Time {
	return f.Time
}

// FixedDate returns a clock pinned to noon of the given date in the local
// zone. It panics on malformed input and is intended for tests and --today
// overrides that were validated already.
func FixedDate(date string) FixedClock {
	t, err := time.ParseInLocation(LayoutISO, date, time.Local)
	if err != nil {
		panic(fmt.Errorf("%w: %q", ErrMalformedDate, date))
	}
	return FixedClock{Time: t.Add(12 * time.Hour)}
}

// Calendar answers date questions relative to its clock.
type Calendar struct {
	Clock Clock
}

// New returns a Calendar on the provided clock, or the system clock when nil.
func New(clock Clock) *Calendar {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Calendar{Clock: clock}
}

// Now returns the clock's current instant.
func (c *Calendar) Now() time.Time {
	if c == nil || c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// Today returns the current calendar date.
func (c *Calendar) Today() string {
	return Format(c.Now())
}

// Tomorrow returns the calendar date after Today.
func (c *Calendar) Tomorrow() string {
	return Format(c.Now().AddDate(0, 0, 1))
}

// Yesterday returns the calendar date before Today.
func (c *Calendar) Yesterday() string {
	return Format(c.Now().AddDate(0, 0, -1))
}

// IsPast reports whether d is strictly before today.
func (c *Calendar) IsPast(d string) bool {
	return d < c.Today()
}

// DaysUntil is the signed number of days from today to d.
func (c *Calendar) DaysUntil(d string) (int, error) {
	return DaysBetween(c.Today(), d)
}

// DisplayLabel renders d for humans: Today, Tomorrow or Yesterday when it
// matches, otherwise a short date that only carries the year when it differs
// from the current one.
func (c *Calendar) DisplayLabel(d string) (string, error) {
	switch d {
	case c.Today():
		return "Today", nil
	case c.Tomorrow():
		return "Tomorrow", nil
	case c.Yesterday():
		return "Yesterday", nil
	}
	t, err := Parse(d)
	if err != nil {
		return "", err
	}
	if t.Year() != c.Now().Year() {
		return t.Format(layoutShortYear), nil
	}
	return t.Format(layoutShort), nil
}

// Parse reads a YYYY-MM-DD date as midnight UTC.
func Parse(d string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, d)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, d)
	}
	return t, nil
}

// Format renders the calendar date of t in its own location.
func Format(t time.Time) string {
	return t.Format(LayoutISO)
}

// DaysBetween returns b - a in whole days, rounding up any fractional day.
func DaysBetween(a, b string) (int, error) {
	from, err := Parse(a)
	if err != nil {
		return 0, err
	}
	to, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24)), nil
}

// LastDayOfMonth returns the number of days in month of year.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Package billing advances subscription due dates one month at a time and
// records the payments that move them.
package billing

import (
	"time"

	"tableflip.dev/daybook/pkg/calendar"
)

// AdvanceMonthly moves date by months calendar months. The day of month is
// clamped to the end of the target month, so the 31st of January lands on the
// last day of February instead of spilling into March.
func AdvanceMonthly(date string, months int) (string, error) {
	t, err := calendar.Parse(date)
	if err != nil {
		return "", err
	}

	total := int(t.Month()) - 1 + months
	year := t.Year() + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)

	day := t.Day()
	if last := calendar.LastDayOfMonth(year, month); day > last {
		day = last
	}
	return calendar.Format(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

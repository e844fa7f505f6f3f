package billing

import (
	"fmt"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/subscription"
)

// Status buckets a subscription by how close its next payment is.
type Status string

const (
	StatusOverdue Status = "overdue"
	StatusDue     Status = "due"
	StatusSoon    Status = "soon"
	StatusOK      Status = "ok"
)

// SoonWindow is how many days ahead a payment counts as coming up soon.
const SoonWindow = 3

// DaysUntilDue is the signed day count from today to the next due date.
func DaysUntilDue(cal *calendar.Calendar, sub subscription.Subscription) (int, error) {
	return cal.DaysUntil(sub.NextDueDate)
}

// IsOverdue reports whether the next due date has passed.
func IsOverdue(cal *calendar.Calendar, sub subscription.Subscription) bool {
	return cal.IsPast(sub.NextDueDate)
}

// StatusOf classifies sub relative to today.
func StatusOf(cal *calendar.Calendar, sub subscription.Subscription) (Status, error) {
	days, err := DaysUntilDue(cal, sub)
	if err != nil {
		return "", err
	}
	switch {
	case days < 0:
		return StatusOverdue, nil
	case days == 0:
		return StatusDue, nil
	case days <= SoonWindow:
		return StatusSoon, nil
	}
	return StatusOK, nil
}

// FormatDaysUntilDue renders the distance to the next payment.
func FormatDaysUntilDue(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d %s overdue", -days, plural(-days, "day"))
	case days == 0:
		return "Due today"
	}
	return fmt.Sprintf("%d %s until due", days, plural(days, "day"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Upcoming returns the active subscriptions due within days of today,
// overdue ones included, soonest first.
func Upcoming(cal *calendar.Calendar, subs []subscription.Subscription, days int) ([]subscription.Subscription, error) {
	out := make([]subscription.Subscription, 0, len(subs))
	for _, s := range subscription.Sort(subs, subscription.SortDueDate) {
		if !s.IsActive {
			continue
		}
		until, err := DaysUntilDue(cal, s)
		if err != nil {
			return nil, err
		}
		if until <= days {
			out = append(out, s)
		}
	}
	return out, nil
}

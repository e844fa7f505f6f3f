package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/subscription"
)

const width = len("11 12 13 14 15 16 17") // an example week

// DueCalendar prints the month holding on with every day that has an active
// subscription due in bold, followed by what is due on those days.
func (pp *PrettyPrint) DueCalendar(on time.Time, subs []subscription.Subscription) {
	then := time.Date(on.Year(), on.Month(), 1, 12, 0, 0, 0, time.Local)
	prefix := calendar.Format(then)[:7]

	count := make([]int, DaysIn(then))
	due := make([]subscription.Subscription, 0, len(subs))
	for _, s := range subscription.Sort(subs, subscription.SortDueDate) {
		if !s.IsActive || !strings.HasPrefix(s.NextDueDate, prefix) {
			continue
		}
		t, err := calendar.Parse(s.NextDueDate)
		if err != nil {
			continue
		}
		count[t.Day()-1]++
		due = append(due, s)
	}

	pp.PrintMonthCount(then, count)
	for _, s := range due {
		_, _ = fmt.Fprintf(pp.out(), "%s  %s  %s\n", pp.label(s.NextDueDate), s.Name, s.Amount.StringFixed(2))
	}
	if len(due) > 0 {
		pp.NewLine()
	}
}

// PrintMonthCount prints a small month grid; days with a non-zero count are
// bold and today is underlined.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	today := ""
	if pp.Calendar != nil {
		today = pp.Calendar.Today()
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	now := color.New(color.Underline)

	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if calendar.Format(time.Date(then.Year(), then.Month(), i+1, 12, 0, 0, 0, time.Local)) == today {
			printer = now
		}
		_, _ = printer.Fprintf(out, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 12, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return calendar.LastDayOfMonth(then.Year(), then.Month())
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 12, 0, 0, 0, time.Local).Weekday()
}

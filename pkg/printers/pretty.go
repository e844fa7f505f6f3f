package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/subscription"
	"tableflip.dev/daybook/pkg/task"
)

type PrettyPrint struct {
	ShowID   bool
	Calendar *calendar.Calendar
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) label(date string) string {
	if pp.Calendar == nil {
		return date
	}
	l, err := pp.Calendar.DisplayLabel(date)
	if err != nil {
		return date
	}
	return l
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, plural(count, noun))
}

func plural(n int, noun string) string {
	switch {
	case n == 1:
		return noun
	case strings.HasSuffix(noun, "y"):
		return strings.TrimSuffix(noun, "y") + "ies"
	}
	return noun + "s"
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) id(id string) string {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	return y.Sprint(id)
}

// Tasks prints one task per row under title.
func (pp *PrettyPrint) Tasks(title string, tasks []task.Task) {
	pp.TitleWithCount(title, len(tasks), "task")
	if len(tasks) == 0 {
		pp.none()
		return
	}

	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		name := t.Title
		if t.Completed {
			name = glyph.Strike(name)
		}
		row := []interface{}{glyph.ForTask(t).String(), name, faint.Sprint(pp.label(t.Date))}
		if t.Note != "" {
			row = append(row, faint.Sprint(t.Note))
		}
		if pp.ShowID {
			row = append([]interface{}{pp.id(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Triage prints the overdue set waiting on the user.
func (pp *PrettyPrint) Triage(d midnight.Decision) {
	if d.Action != midnight.ActionTriage {
		return
	}
	warn := color.New(color.FgHiRed, color.Bold)
	_, _ = warn.Fprintf(pp.out(), "%d overdue ", len(d.Overdue))
	if len(d.Overdue) == 1 {
		_, _ = warn.Fprintln(pp.out(), "task needs a new home")
	} else {
		_, _ = warn.Fprintln(pp.out(), "tasks need a new home")
	}
	pp.Tasks("Overdue", d.Overdue)
}

// Subscriptions prints each subscription with its status and countdown.
func (pp *PrettyPrint) Subscriptions(subs []subscription.Subscription) {
	pp.TitleWithCount("Subscriptions", len(subs), "subscription")
	if len(subs) == 0 {
		pp.none()
		return
	}

	faint := color.New(color.Faint)
	red := color.New(color.FgRed)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range subs {
		status, countdown := billing.StatusOK, ""
		if pp.Calendar != nil {
			if st, err := billing.StatusOf(pp.Calendar, s); err == nil {
				status = st
			}
			if days, err := billing.DaysUntilDue(pp.Calendar, s); err == nil {
				countdown = billing.FormatDaysUntilDue(days)
			}
		}
		if status == billing.StatusOverdue && s.IsActive {
			countdown = red.Sprint(countdown)
		} else {
			countdown = faint.Sprint(countdown)
		}
		row := []interface{}{glyph.ForStatus(status, s.IsActive).String(), s.Name, s.Amount.StringFixed(2), pp.label(s.NextDueDate), countdown}
		if pp.ShowID {
			row = append([]interface{}{pp.id(s.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Payment confirms a recorded payment.
func (pp *PrettyPrint) Payment(sub subscription.Subscription, record subscription.PaymentRecord) {
	b := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = fmt.Fprintf(pp.out(), "Paid %s %s on %s", b.Sprint(sub.Name), record.Amount.StringFixed(2), pp.label(record.PaidDate))
	if record.WasOverdue {
		_, _ = color.New(color.FgRed).Fprint(pp.out(), " (late)")
	}
	_, _ = faint.Fprintf(pp.out(), "\nnext due %s\n", pp.label(sub.NextDueDate))
}

// History prints the payment history of one subscription, oldest first.
func (pp *PrettyPrint) History(sub subscription.Subscription) {
	pp.TitleWithCount(sub.Name, len(sub.PaymentHistory), "payment")
	if len(sub.PaymentHistory) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range sub.PaymentHistory {
		late := ""
		if r.WasOverdue {
			late = color.New(color.FgRed).Sprint("late")
		}
		tbl.AddRow(pp.label(r.PaidDate), r.Amount.StringFixed(2), late)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Ledger prints the entries followed by their totals.
func (pp *PrettyPrint) Ledger(title string, entries []finance.Entry, totals finance.Totals) {
	pp.TitleWithCount(title, len(entries), "entry")
	if len(entries) == 0 {
		pp.none()
	} else {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, e := range entries {
			amount := red.Sprint("-" + e.Amount.StringFixed(2))
			if e.Type == finance.TypeIncome {
				amount = green.Sprint("+" + e.Amount.StringFixed(2))
			}
			tbl.AddRow(pp.label(e.Date), amount, e.Title)
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
	}
	pp.totals(totals)
}

func (pp *PrettyPrint) totals(totals finance.Totals) {
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("income", totals.Income.StringFixed(2))
	tbl.AddRow("expense", totals.Expense.StringFixed(2))
	tbl.AddRow(b.Sprint("balance"), b.Sprint(totals.Balance().StringFixed(2)))
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Overview prints the dashboard.
func (pp *PrettyPrint) Overview(o app.Overview) {
	pp.Title(pp.label(o.Today))

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, v := range []task.View{task.ViewOverdue, task.ViewToday, task.ViewTomorrow, task.ViewBank, task.ViewCompleted} {
		tbl.AddRow(string(v), o.Counts[v])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	if len(o.Overdue) > 0 {
		pp.Tasks("Overdue", o.Overdue)
	}
	if len(o.DueSoon) > 0 {
		pp.Subscriptions(o.DueSoon)
	}
	pp.Title("This month")
	pp.totals(o.Month)
}

// Legend prints what each glyph means.
func (pp *PrettyPrint) Legend(title string, glyphs []glyph.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(pp.out(), glyph.Bold(glyph.Underline(title)))
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

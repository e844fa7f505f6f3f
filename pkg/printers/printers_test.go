package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/subscription"
	"tableflip.dev/daybook/pkg/task"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	buf := &bytes.Buffer{}
	return &PrettyPrint{
		Calendar: calendar.New(calendar.FixedDate("2025-03-11")),
		Out:      buf,
	}, buf
}

func TestTasks(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Tasks("Today", []task.Task{
		{ID: "a", Title: "write report", Date: "2025-03-11", Zone: task.ZoneToday},
		{ID: "b", Title: "call bank", Date: "2025-03-14", Zone: task.ZoneBank, Note: "before noon"},
	})
	out := buf.String()
	for _, want := range []string{"Today - 2 tasks", "write report", "call bank", "before noon", "Mar 14"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "Today") != 2 {
		t.Errorf("expected the title and one row labelled Today:\n%s", out)
	}
}

func TestTasksEmpty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Tasks("Bank", nil)
	if !strings.Contains(buf.String(), "none") {
		t.Errorf("expected none, got %q", buf.String())
	}
}

func TestTriageSkipsWhenNotDue(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Triage(midnight.Decision{Action: midnight.ActionNone})
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	pp.Triage(midnight.Decision{Action: midnight.ActionTriage, Overdue: []task.Task{{ID: "a", Title: "late", Date: "2025-03-01", Zone: task.ZoneOverdue}}})
	if !strings.Contains(buf.String(), "1 overdue task needs a new home") {
		t.Errorf("unexpected triage output %q", buf.String())
	}
}

func TestSubscriptions(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Subscriptions([]subscription.Subscription{
		{ID: "s1", Name: "Streaming", Amount: decimal.RequireFromString("12.5"), NextDueDate: "2025-03-09", IsActive: true},
		{ID: "s2", Name: "Gym", Amount: decimal.NewFromInt(30), NextDueDate: "2025-03-13", IsActive: true},
	})
	out := buf.String()
	for _, want := range []string{"2 subscriptions", "Streaming", "12.50", "2 days overdue", "Gym", "2 days until due"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLedger(t *testing.T) {
	pp, buf := newPrinter(t)
	entries := []finance.Entry{
		{ID: "1", Title: "Salary", Amount: decimal.NewFromInt(100), Type: finance.TypeIncome, Date: "2025-03-02"},
		{ID: "2", Title: "Gym Subscription", Amount: decimal.NewFromInt(30), Type: finance.TypeExpense, Date: "2025-03-01"},
	}
	pp.Ledger("March", entries, finance.Sum(entries, "2025-03"))
	out := buf.String()
	for _, want := range []string{"March - 2 entries", "+100.00", "-30.00", "balance", "70.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDueCalendar(t *testing.T) {
	pp, buf := newPrinter(t)
	on, _ := calendar.Parse("2025-03-11")
	pp.DueCalendar(on, []subscription.Subscription{
		{Name: "Gym", Amount: decimal.NewFromInt(30), NextDueDate: "2025-03-20", IsActive: true},
		{Name: "Paused", Amount: decimal.NewFromInt(5), NextDueDate: "2025-03-21", IsActive: false},
		{Name: "April", Amount: decimal.NewFromInt(5), NextDueDate: "2025-04-02", IsActive: true},
	})
	out := buf.String()
	if !strings.Contains(out, "March") || !strings.Contains(out, "31") {
		t.Errorf("month grid missing:\n%s", out)
	}
	if !strings.Contains(out, "Gym") {
		t.Errorf("due list missing Gym:\n%s", out)
	}
	for _, unwanted := range []string{"Paused", "April"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("due list should not contain %q:\n%s", unwanted, out)
		}
	}
}

func TestMonthHelpers(t *testing.T) {
	feb := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.Local)
	if got := DaysIn(feb); got != 29 {
		t.Errorf("DaysIn(Feb 2024) = %d, want 29", got)
	}
	if got := StartDay(feb); got != time.Thursday {
		t.Errorf("StartDay(Feb 2024) = %v, want Thursday", got)
	}
	if got := NextMonth(time.Date(2024, time.January, 31, 12, 0, 0, 0, time.Local)); got.Month() != time.February {
		t.Errorf("NextMonth(Jan 31) = %v, want February", got.Month())
	}
}

func TestStructured(t *testing.T) {
	v := map[string]interface{}{"amount": decimal.RequireFromString("9.99"), "name": "x"}

	var j bytes.Buffer
	if err := Structured(&j, FormatJSON, v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(j.String(), `"amount": "9.99"`) {
		t.Errorf("unexpected json %s", j.String())
	}

	var y bytes.Buffer
	if err := Structured(&y, FormatYAML, v); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(y.String(), `amount: "9.99"`) || !strings.Contains(y.String(), "name: x") {
		t.Errorf("unexpected yaml %s", y.String())
	}

	if err := Structured(&y, "xml", v); err == nil {
		t.Errorf("expected error for xml")
	}
}

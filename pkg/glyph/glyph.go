package glyph

import (
	"fmt"

	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/task"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var (
	today     = Glyph{Key: string(task.ZoneToday), Symbol: "●", Meaning: "due today"}
	tomorrow  = Glyph{Key: string(task.ZoneTomorrow), Symbol: "›", Meaning: "due tomorrow"}
	bank      = Glyph{Key: string(task.ZoneBank), Symbol: "○", Meaning: "banked for later"}
	overdue   = Glyph{Key: string(task.ZoneOverdue), Symbol: "!", Meaning: "overdue, waiting for triage"}
	completed = Glyph{Key: "completed", Symbol: "✘", Meaning: "task completed"}

	statusOverdue = Glyph{Key: string(billing.StatusOverdue), Symbol: "!", Meaning: "payment overdue"}
	statusDue     = Glyph{Key: string(billing.StatusDue), Symbol: "●", Meaning: "payment due today"}
	statusSoon    = Glyph{Key: string(billing.StatusSoon), Symbol: "◐", Meaning: "payment due soon"}
	statusOK      = Glyph{Key: string(billing.StatusOK), Symbol: "○", Meaning: "nothing due yet"}
	paused        = Glyph{Key: "paused", Symbol: "⦵", Meaning: "subscription paused"}
)

// Tasks is the task legend, one glyph per zone plus completed.
func Tasks() []Glyph {
	return []Glyph{today, tomorrow, bank, overdue, completed}
}

// Subscriptions is the subscription legend.
func Subscriptions() []Glyph {
	return []Glyph{statusOverdue, statusDue, statusSoon, statusOK, paused}
}

// ForTask picks the glyph for a task. Completion wins over the zone.
func ForTask(t task.Task) Glyph {
	if t.Completed {
		return completed
	}
	switch t.Zone {
	case task.ZoneToday:
		return today
	case task.ZoneTomorrow:
		return tomorrow
	case task.ZoneOverdue:
		return overdue
	}
	return bank
}

// ForStatus picks the glyph for a billing status; inactive subscriptions
// always show as paused.
func ForStatus(status billing.Status, active bool) Glyph {
	if !active {
		return paused
	}
	switch status {
	case billing.StatusOverdue:
		return statusOverdue
	case billing.StatusDue:
		return statusDue
	case billing.StatusSoon:
		return statusSoon
	}
	return statusOK
}

func (g Glyph) String() string {
	return g.Symbol
}

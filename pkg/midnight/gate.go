// Package midnight decides, at most once per calendar day, whether the user
// should triage overdue tasks.
//
// The gate keeps no state of its own. The watermark (the last day the
// triage was shown or acknowledged) is passed in and handed back, so every
// operation is a function of the task list, the watermark and today.
package midnight

import (
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/task"
)

// ErrInvalidTarget is returned when tasks are reassigned to a zone other
// than today, tomorrow or bank.
var ErrInvalidTarget = errors.New("midnight: invalid reassignment zone")

// Action tells the caller what to do with a Decision.
type Action int

const (
	// ActionNone means the gate already ran today.
	ActionNone Action = iota
	// ActionAdvance means nothing is overdue; store Decision.Watermark.
	ActionAdvance
	// ActionTriage means the overdue set should be shown to the user. The
	// watermark stays put until they acknowledge or reassign.
	ActionTriage
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAdvance:
		return "advance"
	case ActionTriage:
		return "triage"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// MarshalText renders the action by name in structured output.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Decision is the outcome of Evaluate.
type Decision struct {
	Action Action `json:"action"`
	// Overdue is the overdue set captured at evaluation time.
	Overdue []task.Task `json:"overdue,omitempty"`
	// Watermark is the value to persist after the decision.
	Watermark string `json:"watermark"`
}

// OverdueIDs lists the ids of the captured overdue set.
func (d Decision) OverdueIDs() []string {
	ids := make([]string, 0, len(d.Overdue))
	for _, t := range d.Overdue {
		ids = append(ids, t.ID)
	}
	return ids
}

// Dates is the slice of calendar.Calendar the gate needs.
type Dates interface {
	Today() string
	Tomorrow() string
}

// Gate evaluates and applies the daily overdue triage.
type Gate struct {
	Dates Dates
}

// New returns a Gate on dates.
func New(dates Dates) *Gate {
	return &Gate{Dates: dates}
}

// ShouldPrompt reports whether the watermark predates today. An empty
// watermark means the gate never ran.
func (g *Gate) ShouldPrompt(watermark string) bool {
	return watermark == "" || watermark < g.Dates.Today()
}

// Evaluate decides whether the triage prompt is due.
func (g *Gate) Evaluate(tasks []task.Task, watermark string) Decision {
	if !g.ShouldPrompt(watermark) {
		return Decision{Action: ActionNone, Watermark: watermark}
	}
	overdue := task.Overdue(tasks)
	if len(overdue) == 0 {
		return Decision{Action: ActionAdvance, Watermark: g.advance(watermark)}
	}
	return Decision{Action: ActionTriage, Overdue: overdue, Watermark: watermark}
}

// Acknowledge records that the user dismissed the prompt.
func (g *Gate) Acknowledge(watermark string) string {
	return g.advance(watermark)
}

// Reassign moves the listed tasks into target. Today and tomorrow also
// rewrite the task date; bank keeps it. Reassigning counts as acknowledging
// the prompt, so the advanced watermark is returned alongside the tasks.
func (g *Gate) Reassign(tasks []task.Task, ids []string, target task.Zone, watermark string) ([]task.Task, string, error) {
	var date string
	switch target {
	case task.ZoneToday:
		date = g.Dates.Today()
	case task.ZoneTomorrow:
		date = g.Dates.Tomorrow()
	case task.ZoneBank:
	default:
		return nil, watermark, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		t = t.Clone()
		if _, ok := selected[t.ID]; ok {
			t.Zone = target
			if date != "" {
				t.Date = date
			}
		}
		out[i] = t
	}
	return out, g.advance(watermark), nil
}

// ReassignAll reassigns every task captured in decision.
func (g *Gate) ReassignAll(tasks []task.Task, decision Decision, target task.Zone, watermark string) ([]task.Task, string, error) {
	return g.Reassign(tasks, decision.OverdueIDs(), target, watermark)
}

// advance moves the watermark to today, never backwards.
func (g *Gate) advance(watermark string) string {
	today := g.Dates.Today()
	if watermark > today {
		return watermark
	}
	return today
}

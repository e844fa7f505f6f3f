// Package task defines daybook tasks and the zones they are sorted into.
package task

import (
	"fmt"
	"strings"
)

// Zone is the temporal bucket a task sits in. Today, tomorrow and overdue are
// derived from the task date; bank is a sticky manual choice.
type Zone string

const (
	// ZoneBank holds unscheduled work. Reconciliation never moves it.
	ZoneBank Zone = "bank"
	// ZoneToday holds tasks dated today.
	ZoneToday Zone = "today"
	// ZoneTomorrow holds tasks dated tomorrow.
	ZoneTomorrow Zone = "tomorrow"
	// ZoneOverdue holds open tasks dated before today.
	ZoneOverdue Zone = "overdue"
)

// AllZones returns the zones in display order.
func AllZones() []Zone {
	return []Zone{ZoneOverdue, ZoneToday, ZoneTomorrow, ZoneBank}
}

// ParseZone converts user input to a Zone.
func ParseZone(raw string) (Zone, error) {
	z := Zone(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllZones() {
		if candidate == z {
			return z, nil
		}
	}
	return "", fmt.Errorf("task: unknown zone %q", raw)
}

func (z Zone) String() string {
	return string(z)
}

// Task is a single to-do item.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Note      string   `json:"note,omitempty"`
	Date      string   `json:"date"`
	Zone      Zone     `json:"zone"`
	Completed bool     `json:"completed"`
	CreatedAt string   `json:"createdAt"`
	Tags      []string `json:"tags,omitempty"`
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// Open reports whether the task still needs doing.
func (t Task) Open() bool {
	return !t.Completed
}

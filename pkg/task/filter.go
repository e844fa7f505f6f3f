package task

import (
	"fmt"
	"sort"
	"strings"
)

// View selects which tasks a listing shows.
type View string

const (
	ViewToday     View = "today"
	ViewTomorrow  View = "tomorrow"
	ViewBank      View = "bank"
	ViewOverdue   View = "overdue"
	ViewCompleted View = "completed"
	ViewAll       View = "all"
)

// ParseView converts user input to a View. Empty input means today.
func ParseView(raw string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case "":
		return ViewToday, nil
	case ViewToday, ViewTomorrow, ViewBank, ViewOverdue, ViewCompleted, ViewAll:
		return v, nil
	}
	return "", fmt.Errorf("task: unknown view %q", raw)
}

// Filter returns the tasks belonging to view. Completed tasks only show up in
// the completed and all views.
func Filter(tasks []Task, view View) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, view) {
			out = append(out, t.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].Date < out[j].Date
	})
	return out
}

func matches(t Task, view View) bool {
	switch view {
	case ViewAll:
		return true
	case ViewCompleted:
		return t.Completed
	default:
		return !t.Completed && string(t.Zone) == string(view)
	}
}

// Overdue returns the open tasks currently in the overdue zone.
func Overdue(tasks []Task) []Task {
	return Filter(tasks, ViewOverdue)
}

// Counts tallies open tasks per zone plus completed ones.
func Counts(tasks []Task) map[View]int {
	counts := make(map[View]int, 5)
	for _, t := range tasks {
		if t.Completed {
			counts[ViewCompleted]++
			continue
		}
		counts[View(t.Zone)]++
	}
	return counts
}

// ToggleComplete flips the completed flag of the task with id.
func ToggleComplete(tasks []Task, id string) ([]Task, bool) {
	out := make([]Task, len(tasks))
	found := false
	for i, t := range tasks {
		t = t.Clone()
		if t.ID == id {
			t.Completed = !t.Completed
			found = true
		}
		out[i] = t
	}
	return out, found
}

// Remove drops the task with id.
func Remove(tasks []Task, id string) ([]Task, bool) {
	out := make([]Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t.Clone())
	}
	return out, found
}

// PurgeCompleted drops every completed task and reports how many went.
func PurgeCompleted(tasks []Task) ([]Task, int) {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t.Clone())
		}
	}
	return out, len(tasks) - len(out)
}

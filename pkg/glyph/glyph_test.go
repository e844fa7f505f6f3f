package glyph

import (
	"testing"

	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/task"
)

func TestForTask(t *testing.T) {
	tests := []struct {
		name string
		task task.Task
		want string
	}{
		{"today", task.Task{Zone: task.ZoneToday}, "●"},
		{"tomorrow", task.Task{Zone: task.ZoneTomorrow}, "›"},
		{"bank", task.Task{Zone: task.ZoneBank}, "○"},
		{"overdue", task.Task{Zone: task.ZoneOverdue}, "!"},
		{"completed wins", task.Task{Zone: task.ZoneOverdue, Completed: true}, "✘"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForTask(tt.task).String(); got != tt.want {
				t.Errorf("ForTask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForStatus(t *testing.T) {
	if got := ForStatus(billing.StatusOverdue, false).Key; got != "paused" {
		t.Errorf("ForStatus(inactive) = %q, want paused", got)
	}
	if got := ForStatus(billing.StatusSoon, true).Key; got != string(billing.StatusSoon) {
		t.Errorf("ForStatus(soon) = %q, want soon", got)
	}
}

func TestLegends(t *testing.T) {
	if len(Tasks()) != len(task.AllZones())+1 {
		t.Errorf("Tasks() = %d glyphs, want one per zone plus completed", len(Tasks()))
	}
	if len(Subscriptions()) != 5 {
		t.Errorf("Subscriptions() = %d glyphs, want 5", len(Subscriptions()))
	}
}

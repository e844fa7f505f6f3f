package midnight

import (
	"errors"
	"testing"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/task"
)

func gateOn(day string) *Gate {
	return New(calendar.New(calendar.FixedDate(day)))
}

func overdueTasks() []task.Task {
	return []task.Task{
		{ID: "1", Date: "2025-03-09", Zone: task.ZoneOverdue},
		{ID: "2", Date: "2025-03-10", Zone: task.ZoneOverdue},
		{ID: "3", Date: "2025-03-08", Zone: task.ZoneOverdue, Completed: true},
		{ID: "4", Date: "2025-03-11", Zone: task.ZoneToday},
	}
}

func TestShouldPrompt(t *testing.T) {
	g := gateOn("2025-03-11")
	tests := map[string]bool{
		"":           true,
		"2025-03-10": true,
		"2024-12-31": true,
		"2025-03-11": false,
		"2025-03-12": false,
	}
	for watermark, want := range tests {
		if got := g.ShouldPrompt(watermark); got != want {
			t.Errorf("ShouldPrompt(%q): expected %v, got %v", watermark, want, got)
		}
	}
}

func TestEvaluateSuppressedForToday(t *testing.T) {
	g := gateOn("2025-03-11")
	d := g.Evaluate(overdueTasks(), "2025-03-11")
	if d.Action != ActionNone {
		t.Fatalf("expected none, got %s", d.Action)
	}
	if d.Watermark != "2025-03-11" {
		t.Fatalf("watermark changed: %s", d.Watermark)
	}
}

func TestEvaluateAdvancesSilentlyWhenNothingOverdue(t *testing.T) {
	g := gateOn("2025-03-11")
	tasks := []task.Task{
		{ID: "1", Date: "2025-03-11", Zone: task.ZoneToday},
		{ID: "2", Date: "2025-03-01", Zone: task.ZoneOverdue, Completed: true},
	}
	d := g.Evaluate(tasks, "2025-03-10")
	if d.Action != ActionAdvance {
		t.Fatalf("expected advance, got %s", d.Action)
	}
	if d.Watermark != "2025-03-11" {
		t.Fatalf("expected watermark 2025-03-11, got %s", d.Watermark)
	}
	if len(d.Overdue) != 0 {
		t.Fatalf("expected no overdue tasks, got %d", len(d.Overdue))
	}
}

func TestEvaluateTriageKeepsWatermark(t *testing.T) {
	g := gateOn("2025-03-11")
	d := g.Evaluate(overdueTasks(), "2025-03-10")
	if d.Action != ActionTriage {
		t.Fatalf("expected triage, got %s", d.Action)
	}
	if d.Watermark != "2025-03-10" {
		t.Fatalf("watermark advanced before acknowledgement: %s", d.Watermark)
	}
	ids := d.OverdueIDs()
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("unexpected overdue set: %v", ids)
	}
}

func TestScenarioC(t *testing.T) {
	g := gateOn("2025-03-11")
	tasks := overdueTasks()

	d := g.Evaluate(tasks, "")
	if d.Action != ActionTriage {
		t.Fatalf("expected triage, got %s", d.Action)
	}

	out, watermark, err := g.ReassignAll(tasks, d, task.ZoneBank, "")
	if err != nil {
		t.Fatalf("reassign all: %v", err)
	}
	if watermark != "2025-03-11" {
		t.Fatalf("expected watermark today, got %q", watermark)
	}
	for i, got := range out {
		if got.ID != "1" && got.ID != "2" {
			if got.Zone != tasks[i].Zone || got.Date != tasks[i].Date {
				t.Errorf("task %s should be untouched, got %+v", got.ID, got)
			}
			continue
		}
		if got.Zone != task.ZoneBank {
			t.Errorf("task %s: expected bank, got %s", got.ID, got.Zone)
		}
		if got.Date != tasks[i].Date {
			t.Errorf("task %s: date changed from %s to %s", got.ID, tasks[i].Date, got.Date)
		}
	}
}

func TestReassignRewritesDates(t *testing.T) {
	g := gateOn("2025-03-11")
	tasks := overdueTasks()

	out, _, err := g.Reassign(tasks, []string{"1"}, task.ZoneToday, "2025-03-10")
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if out[0].Zone != task.ZoneToday || out[0].Date != "2025-03-11" {
		t.Fatalf("expected task moved to today, got %+v", out[0])
	}
	if out[1].Zone != task.ZoneOverdue {
		t.Fatalf("unlisted task changed: %+v", out[1])
	}

	out, _, err = g.Reassign(tasks, []string{"2"}, task.ZoneTomorrow, "2025-03-10")
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if out[1].Zone != task.ZoneTomorrow || out[1].Date != "2025-03-12" {
		t.Fatalf("expected task moved to tomorrow, got %+v", out[1])
	}
	if tasks[1].Zone != task.ZoneOverdue {
		t.Fatal("reassign mutated input")
	}
}

func TestReassignRejectsOverdueTarget(t *testing.T) {
	g := gateOn("2025-03-11")
	_, watermark, err := g.Reassign(overdueTasks(), []string{"1"}, task.ZoneOverdue, "2025-03-10")
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
	if watermark != "2025-03-10" {
		t.Fatalf("watermark moved on error: %s", watermark)
	}
}

func TestWatermarkMonotonic(t *testing.T) {
	g := gateOn("2025-03-11")
	watermark := "2025-03-20"

	if got := g.Acknowledge(watermark); got != watermark {
		t.Fatalf("acknowledge moved watermark back to %s", got)
	}
	_, got, err := g.Reassign(overdueTasks(), []string{"1"}, task.ZoneBank, watermark)
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if got != watermark {
		t.Fatalf("reassign moved watermark back to %s", got)
	}

	steps := []string{"", "2025-03-01", "2025-03-11"}
	prev := ""
	for _, w := range steps {
		next := g.Acknowledge(w)
		if next < prev || next < w {
			t.Fatalf("watermark went backwards: prev=%s in=%s out=%s", prev, w, next)
		}
		prev = next
	}
}

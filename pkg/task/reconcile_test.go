package task

import (
	"reflect"
	"testing"

	"tableflip.dev/daybook/pkg/calendar"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "a", Title: "yesterday, still today", Date: "2025-03-10", Zone: ZoneToday},
		{ID: "b", Title: "due today", Date: "2025-03-11", Zone: ZoneTomorrow},
		{ID: "c", Title: "due tomorrow", Date: "2025-03-12", Zone: ZoneBank},
		{ID: "d", Title: "next week", Date: "2025-03-18", Zone: ZoneToday},
		{ID: "e", Title: "done long ago", Date: "2025-01-01", Zone: ZoneToday, Completed: true},
		{ID: "f", Title: "banked and old", Date: "2024-12-01", Zone: ZoneBank},
		{ID: "g", Title: "today but flagged overdue", Date: "2025-03-11", Zone: ZoneOverdue},
		{ID: "h", Title: "tomorrow from today", Date: "2025-03-12", Zone: ZoneToday, Tags: []string{"home"}},
	}
}

func TestReconcileScenarioA(t *testing.T) {
	cal := calendar.New(calendar.FixedDate("2025-03-11"))
	in := []Task{{ID: "1", Date: "2025-03-10", Zone: ZoneToday}}

	out, changed := Reconcile(in, cal)
	if !changed {
		t.Fatal("expected change")
	}
	if out[0].Zone != ZoneOverdue {
		t.Fatalf("expected overdue, got %s", out[0].Zone)
	}
	if in[0].Zone != ZoneToday {
		t.Fatalf("input was mutated: %s", in[0].Zone)
	}
}

func TestReconcileZones(t *testing.T) {
	cal := calendar.New(calendar.FixedDate("2025-03-11"))
	out, changed := Reconcile(sampleTasks(), cal)
	if !changed {
		t.Fatal("expected change")
	}

	want := map[string]Zone{
		"a": ZoneOverdue,
		"b": ZoneToday,
		"c": ZoneBank,
		"d": ZoneToday,
		"e": ZoneToday,
		"f": ZoneBank,
		"g": ZoneToday,
		"h": ZoneTomorrow,
	}
	for _, task := range out {
		if task.Zone != want[task.ID] {
			t.Errorf("task %s: expected %s, got %s", task.ID, want[task.ID], task.Zone)
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	for _, day := range []string{"2025-03-09", "2025-03-11", "2025-03-12", "2025-04-01"} {
		cal := calendar.New(calendar.FixedDate(day))
		first, _ := Reconcile(sampleTasks(), cal)
		second, changed := Reconcile(first, cal)
		if changed {
			t.Errorf("%s: second pass reported a change", day)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: second pass altered the collection", day)
		}
	}
}

func TestReconcileLeavesBankAndCompleted(t *testing.T) {
	tasks := sampleTasks()
	for _, day := range []string{"2020-01-01", "2025-03-11", "2030-12-31"} {
		cal := calendar.New(calendar.FixedDate(day))
		out, _ := Reconcile(tasks, cal)
		for i, task := range out {
			if tasks[i].Zone == ZoneBank || tasks[i].Completed {
				if task.Zone != tasks[i].Zone {
					t.Errorf("%s: task %s moved from %s to %s", day, task.ID, tasks[i].Zone, task.Zone)
				}
			}
		}
	}
}

func TestReconcileEmpty(t *testing.T) {
	cal := calendar.New(calendar.FixedDate("2025-03-11"))
	out, changed := Reconcile(nil, cal)
	if changed || len(out) != 0 {
		t.Fatalf("expected no change on empty input, got %v %v", out, changed)
	}
}

func TestReconcileDoesNotShareTags(t *testing.T) {
	cal := calendar.New(calendar.FixedDate("2025-03-11"))
	in := sampleTasks()
	out, _ := Reconcile(in, cal)
	out[7].Tags[0] = "work"
	if in[7].Tags[0] != "home" {
		t.Fatalf("tags slice shared with input")
	}
}

func TestZoneForDate(t *testing.T) {
	cal := calendar.New(calendar.FixedDate("2025-03-11"))
	tests := []struct {
		date   string
		chosen Zone
		want   Zone
	}{
		{"2025-03-11", ZoneBank, ZoneToday},
		{"2025-03-12", ZoneBank, ZoneTomorrow},
		{"2025-03-20", ZoneBank, ZoneBank},
		{"2025-03-20", ZoneToday, ZoneBank},
		{"2025-03-20", ZoneTomorrow, ZoneBank},
		{"2025-03-20", ZoneOverdue, ZoneBank},
		{"2025-03-20", "", ZoneBank},
		{"2025-03-01", "", ZoneOverdue},
		{"2025-03-01", ZoneToday, ZoneOverdue},
		{"2025-03-01", ZoneBank, ZoneBank},
	}
	for _, tt := range tests {
		if got := ZoneForDate(tt.date, tt.chosen, cal); got != tt.want {
			t.Errorf("ZoneForDate(%s, %q): expected %s, got %s", tt.date, tt.chosen, tt.want, got)
		}
	}
}

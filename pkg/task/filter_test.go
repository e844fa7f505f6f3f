package task

import "testing"

func TestFilterViews(t *testing.T) {
	tasks := []Task{
		{ID: "1", Date: "2025-03-11", Zone: ZoneToday},
		{ID: "2", Date: "2025-03-09", Zone: ZoneOverdue},
		{ID: "3", Date: "2025-03-08", Zone: ZoneOverdue, Completed: true},
		{ID: "4", Date: "2025-03-12", Zone: ZoneTomorrow},
		{ID: "5", Date: "2025-01-01", Zone: ZoneBank},
		{ID: "6", Date: "2025-03-07", Zone: ZoneOverdue},
	}

	tests := []struct {
		view View
		want []string
	}{
		{ViewToday, []string{"1"}},
		{ViewOverdue, []string{"6", "2"}},
		{ViewTomorrow, []string{"4"}},
		{ViewBank, []string{"5"}},
		{ViewCompleted, []string{"3"}},
	}
	for _, tt := range tests {
		got := Filter(tasks, tt.view)
		if len(got) != len(tt.want) {
			t.Errorf("%s: expected %d tasks, got %d", tt.view, len(tt.want), len(got))
			continue
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("%s[%d]: expected %s, got %s", tt.view, i, id, got[i].ID)
			}
		}
	}

	if got := Filter(tasks, ViewAll); len(got) != len(tasks) {
		t.Fatalf("all: expected %d, got %d", len(tasks), len(got))
	}

	counts := Counts(tasks)
	if counts[ViewOverdue] != 2 || counts[ViewCompleted] != 1 || counts[ViewBank] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestParseViewAndZone(t *testing.T) {
	if v, err := ParseView(""); err != nil || v != ViewToday {
		t.Fatalf("expected default today view, got %q %v", v, err)
	}
	if _, err := ParseView("someday"); err == nil {
		t.Fatal("expected error for unknown view")
	}
	if z, err := ParseZone(" Bank "); err != nil || z != ZoneBank {
		t.Fatalf("expected bank, got %q %v", z, err)
	}
	if _, err := ParseZone("later"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestToggleRemovePurge(t *testing.T) {
	tasks := []Task{
		{ID: "1", Zone: ZoneToday},
		{ID: "2", Zone: ZoneToday, Completed: true},
	}

	toggled, ok := ToggleComplete(tasks, "1")
	if !ok || !toggled[0].Completed {
		t.Fatalf("expected task 1 completed, got %+v", toggled[0])
	}
	if tasks[0].Completed {
		t.Fatal("toggle mutated input")
	}
	if _, ok := ToggleComplete(tasks, "missing"); ok {
		t.Fatal("expected toggle of unknown id to report not found")
	}

	removed, ok := Remove(tasks, "2")
	if !ok || len(removed) != 1 || removed[0].ID != "1" {
		t.Fatalf("unexpected remove result: %+v", removed)
	}

	purged, n := PurgeCompleted(toggled)
	if n != 2 || len(purged) != 0 {
		t.Fatalf("expected both purged, got %d left, %d purged", len(purged), n)
	}
}

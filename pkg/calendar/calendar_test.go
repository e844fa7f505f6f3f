package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestTodayTomorrowYesterday(t *testing.T) {
	cal := New(FixedDate("2024-02-28"))

	if got := cal.Today(); got != "2024-02-28" {
		t.Fatalf("today: expected 2024-02-28, got %s", got)
	}
	if got := cal.Tomorrow(); got != "2024-02-29" {
		t.Fatalf("tomorrow: expected 2024-02-29, got %s", got)
	}
	if got := cal.Yesterday(); got != "2024-02-27" {
		t.Fatalf("yesterday: expected 2024-02-27, got %s", got)
	}
}

func TestTomorrowCrossesYear(t *testing.T) {
	cal := New(FixedDate("2024-12-31"))
	if got := cal.Tomorrow(); got != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %s", got)
	}
}

func TestIsPast(t *testing.T) {
	cal := New(FixedDate("2025-03-11"))
	cases := map[string]bool{
		"2025-03-10": true,
		"2024-12-31": true,
		"2025-03-11": false,
		"2025-03-12": false,
	}
	for date, want := range cases {
		if got := cal.IsPast(date); got != want {
			t.Errorf("IsPast(%s): expected %v, got %v", date, want, got)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2025-03-10", "2025-03-10", 0},
		{"2025-03-10", "2025-03-11", 1},
		{"2025-03-11", "2025-03-10", -1},
		{"2024-02-01", "2024-03-01", 29},
		{"2025-03-01", "2025-04-01", 31},
		{"2024-12-31", "2025-01-01", 1},
	}
	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Fatalf("DaysBetween(%s, %s): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestDaysBetweenMalformed(t *testing.T) {
	if _, err := DaysBetween("2025-13-01", "2025-01-01"); !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
	if _, err := DaysBetween("2025-01-01", "tomorrow"); !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
}

func TestDisplayLabel(t *testing.T) {
	cal := New(FixedDate("2025-03-11"))
	tests := map[string]string{
		"2025-03-11": "Today",
		"2025-03-12": "Tomorrow",
		"2025-03-10": "Yesterday",
		"2025-07-04": "Jul 4",
		"2024-12-25": "Dec 25, 2024",
		"2026-01-02": "Jan 2, 2026",
	}
	for date, want := range tests {
		got, err := cal.DisplayLabel(date)
		if err != nil {
			t.Fatalf("DisplayLabel(%s): %v", date, err)
		}
		if got != want {
			t.Errorf("DisplayLabel(%s): expected %q, got %q", date, want, got)
		}
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := LastDayOfMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("LastDayOfMonth(%d, %s): expected %d, got %d", tt.year, tt.month, tt.want, got)
		}
	}
}

func TestNilCalendarFallsBackToSystemClock(t *testing.T) {
	var cal *Calendar
	if got, want := cal.Today(), time.Now().Format(LayoutISO); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

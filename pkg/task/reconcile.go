package task

// Dates is the slice of calendar.Calendar the zone logic needs.
type Dates interface {
	Today() string
	Tomorrow() string
	IsPast(d string) bool
}

// Reconcile recomputes the zone of every open, non-bank task against the
// current date. The input is never modified; changed reports whether any
// zone in the returned slice differs from the input.
func Reconcile(tasks []Task, dates Dates) ([]Task, bool) {
	today := dates.Today()
	tomorrow := dates.Tomorrow()

	updated := make([]Task, len(tasks))
	changed := false
	for i, t := range tasks {
		t = t.Clone()
		if zone, ok := derivedZone(t, today, tomorrow, dates); ok && zone != t.Zone {
			t.Zone = zone
			changed = true
		}
		updated[i] = t
	}
	return updated, changed
}

// derivedZone returns the zone a task should be in, or false when the task
// keeps whatever zone it has.
func derivedZone(t Task, today, tomorrow string, dates Dates) (Zone, bool) {
	if t.Completed || t.Zone == ZoneBank {
		return "", false
	}
	switch {
	case t.Date == today:
		return ZoneToday, true
	case t.Date == tomorrow:
		return ZoneTomorrow, true
	case dates.IsPast(t.Date):
		return ZoneOverdue, true
	default:
		return "", false
	}
}

// ZoneForDate picks the zone for a task being saved with the given date.
// Today and tomorrow follow the date. Any other date goes to the bank when
// that is the choice; otherwise a past date is overdue and a later one is
// banked.
func ZoneForDate(date string, chosen Zone, dates Dates) Zone {
	switch date {
	case dates.Today():
		return ZoneToday
	case dates.Tomorrow():
		return ZoneTomorrow
	}
	if chosen != ZoneBank && dates.IsPast(date) {
		return ZoneOverdue
	}
	return ZoneBank
}

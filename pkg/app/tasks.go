package app

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/task"
)

// NewTask is the task form.
type NewTask struct {
	Title string
	Note  string
	// Date defaults to today.
	Date string
	// Zone may ask for the bank; today and tomorrow follow the date.
	Zone task.Zone
	Tags []string
}

// Validate checks the form before anything is stored.
func (n NewTask) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&n.Date, validation.Date(calendar.LayoutISO)),
		validation.Field(&n.Zone, validation.In(task.ZoneBank, task.ZoneToday, task.ZoneTomorrow)),
	)
}

// AddTask stores a new task, choosing its zone from its date.
func (s *Service) AddTask(ctx context.Context, n NewTask) (task.Task, error) {
	n.Title = strings.TrimSpace(n.Title)
	if err := n.Validate(); err != nil {
		return task.Task{}, fmt.Errorf("app: invalid task: %w", err)
	}
	if n.Date == "" {
		n.Date = s.Calendar.Today()
	}

	t := task.Task{
		ID:        s.newID(),
		Title:     n.Title,
		Note:      strings.TrimSpace(n.Note),
		Date:      n.Date,
		Zone:      task.ZoneForDate(n.Date, n.Zone, s.Calendar),
		CreatedAt: s.timestamp(),
		Tags:      n.Tags,
	}

	tasks := s.Tasks.Load(ctx)
	s.Tasks.ReplaceAll(ctx, append(tasks, t))
	return t, nil
}

// TaskList returns the tasks in view.
func (s *Service) TaskList(ctx context.Context, view task.View) []task.Task {
	return task.Filter(s.Tasks.Load(ctx), view)
}

// ToggleTask flips the completed flag of id.
func (s *Service) ToggleTask(ctx context.Context, id string) (task.Task, error) {
	updated, ok := task.ToggleComplete(s.Tasks.Load(ctx), id)
	if !ok {
		return task.Task{}, fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	s.Tasks.ReplaceAll(ctx, updated)
	for _, t := range updated {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("%w: task %q", ErrNotFound, id)
}

// DeleteTask removes id.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	updated, ok := task.Remove(s.Tasks.Load(ctx), id)
	if !ok {
		return fmt.Errorf("%w: task %q", ErrNotFound, id)
	}
	s.Tasks.ReplaceAll(ctx, updated)
	return nil
}

// PurgeCompleted removes every completed task and returns how many.
func (s *Service) PurgeCompleted(ctx context.Context) int {
	updated, n := task.PurgeCompleted(s.Tasks.Load(ctx))
	if n > 0 {
		s.Tasks.ReplaceAll(ctx, updated)
	}
	return n
}

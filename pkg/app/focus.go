package app

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/task"
)

// FocusResult is what the session sees after coming to the foreground.
type FocusResult struct {
	Tasks []task.Task `json:"tasks"`
	// Reconciled is true when zones moved and the tasks were saved.
	Reconciled bool              `json:"reconciled"`
	Decision   midnight.Decision `json:"decision"`
}

// Focus runs on every foreground event: it re-zones the tasks for today,
// saves them when anything moved, and then asks the midnight gate whether
// the overdue triage is due. When nothing is overdue the watermark is
// advanced silently.
func (s *Service) Focus(ctx context.Context) (FocusResult, error) {
	if err := ctx.Err(); err != nil {
		return FocusResult{}, err
	}

	loaded := s.Tasks.Load(ctx)
	tasks, changed := task.Reconcile(loaded, s.Calendar)
	if changed {
		s.Tasks.ReplaceAll(ctx, tasks)
	}

	decision := s.gate().Evaluate(tasks, s.Watermark.Load(ctx))
	if decision.Action == midnight.ActionAdvance {
		s.Watermark.Save(ctx, decision.Watermark)
	}

	return FocusResult{
		Tasks:      tasks,
		Reconciled: changed,
		Decision:   decision,
	}, nil
}

// Acknowledge dismisses the triage without moving any task.
func (s *Service) Acknowledge(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	watermark := s.gate().Acknowledge(s.Watermark.Load(ctx))
	s.Watermark.Save(ctx, watermark)
	return watermark, nil
}

// Reassign moves the given tasks to zone and acknowledges the triage.
func (s *Service) Reassign(ctx context.Context, ids []string, zone task.Zone) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tasks := s.Tasks.Load(ctx)
	known := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		known[t.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: task %q", ErrNotFound, id)
		}
	}
	return s.reassign(ctx, tasks, ids, zone)
}

// ReassignAll moves the overdue set captured by decision to zone.
func (s *Service) ReassignAll(ctx context.Context, decision midnight.Decision, zone task.Zone) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.reassign(ctx, s.Tasks.Load(ctx), decision.OverdueIDs(), zone)
}

func (s *Service) reassign(ctx context.Context, tasks []task.Task, ids []string, zone task.Zone) ([]task.Task, error) {
	updated, watermark, err := s.gate().Reassign(tasks, ids, zone, s.Watermark.Load(ctx))
	if err != nil {
		return nil, err
	}
	s.Tasks.ReplaceAll(ctx, updated)
	s.Watermark.Save(ctx, watermark)
	return updated, nil
}

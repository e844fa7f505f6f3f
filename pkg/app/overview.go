package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/subscription"
	"tableflip.dev/daybook/pkg/task"
)

// Overview is the dashboard summary.
type Overview struct {
	Today     string                      `json:"today"`
	Counts    map[task.View]int           `json:"counts"`
	Overdue   []task.Task                 `json:"overdue"`
	DueSoon   []subscription.Subscription `json:"dueSoon"`
	Month     finance.Totals              `json:"month"`
	Watermark string                      `json:"watermark,omitempty"`
}

// Overview reads the collections side by side and summarises them. It does
// not reconcile; call Focus first for up-to-date zones.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var (
		tasks     []task.Task
		subs      []subscription.Subscription
		entries   []finance.Entry
		watermark string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks = s.Tasks.Load(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		subs = s.Subscriptions.Load(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		entries = s.Finance.Load(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		watermark = s.Watermark.Load(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	today := s.Calendar.Today()
	dueSoon, err := billing.Upcoming(s.Calendar, subs, billing.SoonWindow)
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		Today:     today,
		Counts:    task.Counts(tasks),
		Overdue:   task.Overdue(tasks),
		DueSoon:   dueSoon,
		Month:     finance.Sum(entries, today[:7]),
		Watermark: watermark,
	}, nil
}

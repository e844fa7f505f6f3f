package watch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/task"
)

type fakeSource struct {
	ch chan store.Event
}

func (f *fakeSource) Watch(_ context.Context, _ logrus.FieldLogger) (<-chan store.Event, error) {
	return f.ch, nil
}

func TestWatchRefocusesOnStoreChanges(t *testing.T) {
	log, _ := test.NewNullLogger()
	svc := app.New(store.NewMemory(), calendar.New(calendar.FixedDate("2025-03-11")), log)
	src := &fakeSource{ch: make(chan store.Event)}

	var (
		mu      sync.Mutex
		actions []midnight.Action
	)
	w := &Watch{
		Service: svc,
		Source:  src,
		Log:     log,
		OnFocus: func(res app.FocusResult) {
			mu.Lock()
			actions = append(actions, res.Decision.Action)
			mu.Unlock()
		},
	}

	svc.Tasks.ReplaceAll(context.Background(), []task.Task{
		{ID: "a", Title: "late", Date: "2025-03-01", Zone: task.ZoneToday},
	})

	done := make(chan error, 1)
	go func() { done <- w.Do(context.Background()) }()

	// Another session settles the triage.
	src.ch <- store.Event{Key: store.KeyFinance}
	if _, err := svc.Acknowledge(context.Background()); err != nil {
		t.Fatalf("Acknowledge() error = %v", err)
	}
	src.ch <- store.Event{Key: store.KeyWatermark}
	close(src.ch)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Do() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after the source closed")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(actions) != 2 {
		t.Fatalf("focus ran %d times, want 2 (start and watermark change)", len(actions))
	}
	if actions[0] != midnight.ActionTriage {
		t.Errorf("first focus = %v, want triage", actions[0])
	}
	if actions[1] != midnight.ActionNone {
		t.Errorf("second focus = %v, want none", actions[1])
	}
}

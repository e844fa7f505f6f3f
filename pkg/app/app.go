package app

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/subscription"
	"tableflip.dev/daybook/pkg/task"
)

// Service provides the high-level daybook operations over the stored
// collections so the CLI commands and the watch loop share one code path.
// Every operation loads what it needs, computes a new collection and writes
// it back; nothing is cached between calls.
type Service struct {
	Tasks         *store.Collection[task.Task]
	Subscriptions *store.Collection[subscription.Subscription]
	Finance       *store.Collection[finance.Entry]
	Watermark     *store.Watermark
	Calendar      *calendar.Calendar

	// NewID mints record ids; uuid.NewString when nil.
	NewID func() string
}

var (
	// ErrNotFound is returned for unknown task or subscription ids.
	ErrNotFound = errors.New("app: not found")
	// ErrInactive is returned when paying a paused subscription.
	ErrInactive = errors.New("app: subscription is not active")
)

// New wires a Service over blobs.
func New(blobs store.Blobs, cal *calendar.Calendar, log logrus.FieldLogger) *Service {
	return &Service{
		Tasks:         store.NewCollection[task.Task](blobs, store.KeyTasks, log),
		Subscriptions: store.NewCollection[subscription.Subscription](blobs, store.KeySubscriptions, log),
		Finance:       store.NewCollection[finance.Entry](blobs, store.KeyFinance, log),
		Watermark:     store.NewWatermark(blobs, log),
		Calendar:      cal,
	}
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) gate() *midnight.Gate {
	return midnight.New(s.Calendar)
}

func (s *Service) advancer() *billing.Advancer {
	return &billing.Advancer{Calendar: s.Calendar, NewID: s.newID}
}

func (s *Service) timestamp() string {
	return s.Calendar.Now().UTC().Format(time.RFC3339)
}

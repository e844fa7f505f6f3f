package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Event is emitted by Watch when a blob changes on disk.
type Event struct {
	// Key is the blob that changed. Empty means "something changed, reload
	// everything".
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel; events are dropped rather than blocking the watcher. The
// channel is closed once ctx is done or the watcher fails.
func (s *Disk) Watch(ctx context.Context, log logrus.FieldLogger) (<-chan Event, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		var (
			mu     sync.Mutex
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				log.WithError(err).Warn("store: watcher close")
			}
		}()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// The consumer is busy; the next event reloads anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("store: watcher error")
				throttle.Enqueue(Event{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Event{Key: s.keyForPath(evt.Name)}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file under the base path back to its blob key.
func (s *Disk) keyForPath(path string) string {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel == "." || strings.Contains(rel, string(filepath.Separator)) {
		return ""
	}
	return rel
}

// eventThrottle coalesces bursts of writes into one event per key.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	if _, all := pending[""]; all {
		send(Event{})
		return
	}
	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}

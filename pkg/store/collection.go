package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// Collection loads and replaces one JSON array blob. Storage failures are
// logged and never returned: a failed load looks like an empty collection
// and a failed save is dropped.
type Collection[T any] struct {
	Blobs Blobs
	Key   string
	Log   logrus.FieldLogger
}

// NewCollection binds a collection of T to key.
func NewCollection[T any](blobs Blobs, key string, log logrus.FieldLogger) *Collection[T] {
	return &Collection[T]{Blobs: blobs, Key: key, Log: log}
}

func (c *Collection[T]) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Load returns the stored items, or an empty slice.
func (c *Collection[T]) Load(ctx context.Context) []T {
	items := make([]T, 0)
	if err := ctx.Err(); err != nil {
		c.log().WithField("key", c.Key).WithError(err).Warn("load cancelled")
		return items
	}
	data, err := c.Blobs.Read(c.Key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log().WithField("key", c.Key).WithError(err).Error("error loading collection")
		}
		return items
	}
	if len(data) == 0 {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		c.log().WithField("key", c.Key).WithError(err).Error("error decoding collection")
		return make([]T, 0)
	}
	return items
}

// ReplaceAll overwrites the stored items.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) {
	if err := ctx.Err(); err != nil {
		c.log().WithField("key", c.Key).WithError(err).Warn("save cancelled")
		return
	}
	if items == nil {
		items = make([]T, 0)
	}
	data, err := json.Marshal(items)
	if err != nil {
		c.log().WithField("key", c.Key).WithError(err).Error("error encoding collection")
		return
	}
	if err := c.Blobs.Write(c.Key, data); err != nil {
		c.log().WithField("key", c.Key).WithError(err).Error("error saving collection")
	}
}

// Watermark stores the last date the overdue triage was acknowledged, as a
// bare YYYY-MM-DD string. Empty means it was never acknowledged.
type Watermark struct {
	Blobs Blobs
	Key   string
	Log   logrus.FieldLogger
}

// NewWatermark binds the watermark to its default key.
func NewWatermark(blobs Blobs, log logrus.FieldLogger) *Watermark {
	return &Watermark{Blobs: blobs, Key: KeyWatermark, Log: log}
}

func (w *Watermark) log() logrus.FieldLogger {
	if w.Log == nil {
		return logrus.StandardLogger()
	}
	return w.Log
}

// Load returns the stored watermark or "".
func (w *Watermark) Load(ctx context.Context) string {
	if ctx.Err() != nil {
		return ""
	}
	data, err := w.Blobs.Read(w.Key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			w.log().WithField("key", w.Key).WithError(err).Error("error loading last midnight check")
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save stores date.
func (w *Watermark) Save(ctx context.Context, date string) {
	if ctx.Err() != nil {
		return
	}
	if err := w.Blobs.Write(w.Key, []byte(date)); err != nil {
		w.log().WithField("key", w.Key).WithError(err).Error("error saving last midnight check")
	}
}

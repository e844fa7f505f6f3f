// Package watch keeps a focus session open and reruns focus whenever the
// store changes underneath it.
package watch

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

// Source streams store changes.
type Source interface {
	Watch(ctx context.Context, log logrus.FieldLogger) (<-chan store.Event, error)
}

// Watch runs until ctx is cancelled or the source closes.
type Watch struct {
	Service *app.Service
	Source  Source
	Printer *printers.PrettyPrint
	Log     logrus.FieldLogger

	// OnFocus, when set, sees every focus result.
	OnFocus func(app.FocusResult)
}

func (w *Watch) log() logrus.FieldLogger {
	if w.Log == nil {
		return logrus.StandardLogger()
	}
	return w.Log
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Service == nil || w.Source == nil {
		return errors.New("can not watch, no service or store")
	}
	events, err := w.Source.Watch(ctx, w.log())
	if err != nil {
		return err
	}

	var last midnight.Action = -1
	focus := func() error {
		res, err := w.Service.Focus(ctx)
		if err != nil {
			return err
		}
		if w.OnFocus != nil {
			w.OnFocus(res)
		}
		// Only speak up when the gate changes its mind.
		if res.Decision.Action != last && w.Printer != nil {
			w.Printer.Triage(res.Decision)
		}
		last = res.Decision.Action
		return nil
	}

	if err := focus(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.log().WithField("key", ev.Key).Debug("store changed")
			switch ev.Key {
			case store.KeyTasks, store.KeyWatermark, "":
				if err := focus(); err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
			case store.KeySubscriptions:
				if w.Printer == nil {
					continue
				}
				soon, err := billing.Upcoming(w.Service.Calendar, w.Service.ListSubscriptions(ctx, ""), billing.SoonWindow)
				if err != nil {
					w.log().WithError(err).Warn("skipping upcoming payments")
					continue
				}
				if len(soon) > 0 {
					w.Printer.Subscriptions(soon)
				}
			}
		}
	}
}

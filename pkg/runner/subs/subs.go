// Package subs provides the runners behind the subscription commands.
package subs

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/billing"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/subscription"
)

var errNoService = errors.New("no service")

// Add creates a subscription.
type Add struct {
	Service      *app.Service
	Printer      *printers.PrettyPrint
	Emit         printers.Emit
	Subscription app.NewSubscription
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	sub, err := n.Service.AddSubscription(ctx, n.Subscription)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(sub)
	}
	n.Printer.Subscriptions([]subscription.Subscription{sub})
	return nil
}

// List shows subscriptions. A non-negative DueWithin keeps only the active
// ones due within that many days; Calendar prints a month grid instead.
type List struct {
	Service   *app.Service
	Printer   *printers.PrettyPrint
	Emit      printers.Emit
	Sort      subscription.SortKey
	DueWithin int
	Calendar  bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	subs := n.Service.ListSubscriptions(ctx, n.Sort)
	if n.DueWithin >= 0 {
		var err error
		if subs, err = billing.Upcoming(n.Service.Calendar, subs, n.DueWithin); err != nil {
			return err
		}
	}
	if n.Emit != nil {
		return n.Emit(subs)
	}
	if n.Calendar {
		n.Printer.DueCalendar(n.Service.Calendar.Now(), subs)
		return nil
	}
	n.Printer.Subscriptions(subs)
	return nil
}

// Pay marks a subscription paid.
type Pay struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
	ID      string
	// PaidOn defaults to today.
	PaidOn string
}

func (n *Pay) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	sub, record, err := n.Service.MarkPaid(ctx, n.ID, n.PaidOn)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(map[string]interface{}{
			"subscription": sub,
			"payment":      record,
		})
	}
	n.Printer.Payment(sub, record)
	return nil
}

// SetActive pauses or resumes a subscription.
type SetActive struct {
	Service *app.Service
	Emit    printers.Emit
	ID      string
	Active  bool
}

func (n *SetActive) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	sub, err := n.Service.SetActive(ctx, n.ID, n.Active)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(sub)
	}
	state := "paused"
	if sub.IsActive {
		state = "active"
	}
	_, _ = fmt.Fprintf(color.Output, "%s is %s\n", sub.Name, state)
	return nil
}

// History shows the payments made against one subscription.
type History struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
	ID      string
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	all := n.Service.ListSubscriptions(ctx, subscription.SortDueDate)
	i := subscription.Find(all, n.ID)
	if i < 0 {
		return fmt.Errorf("%w: subscription %q", app.ErrNotFound, n.ID)
	}
	if n.Emit != nil {
		return n.Emit(all[i].PaymentHistory)
	}
	n.Printer.History(all[i])
	return nil
}

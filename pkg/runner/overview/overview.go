// Package overview prints the dashboard.
package overview

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Overview reconciles, then summarises tasks, upcoming payments and the
// month's money.
type Overview struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
}

func (n *Overview) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not build the overview, no service")
	}
	if _, err := n.Service.Focus(ctx); err != nil {
		return err
	}
	o, err := n.Service.Overview(ctx)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(o)
	}
	n.Printer.Overview(o)
	return nil
}

// Package ledger shows the finance entries.
package ledger

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/printers"
)

// Ledger lists the entries of one month ("2025-03"), one year ("2025") or
// everything ("").
type Ledger struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
	Period  string
}

type result struct {
	Period  string          `json:"period,omitempty"`
	Entries []finance.Entry `json:"entries"`
	Totals  finance.Totals  `json:"totals"`
}

func (n *Ledger) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show the ledger, no service")
	}
	entries, totals := n.Service.Ledger(ctx, n.Period)
	if n.Emit != nil {
		return n.Emit(result{Period: n.Period, Entries: entries, Totals: totals})
	}
	title := n.Period
	if title == "" {
		title = "Ledger"
	}
	n.Printer.Ledger(title, entries, totals)
	return nil
}

// Add books an income or expense entry and shows its month.
type Add struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
	Entry   app.NewEntry
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add to the ledger, no service")
	}
	e, err := n.Service.AddEntry(ctx, n.Entry)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(e)
	}
	month := e.Date[:7]
	entries, totals := n.Service.Ledger(ctx, month)
	n.Printer.Ledger(month, entries, totals)
	return nil
}

// Package key provides CLI helpers to display the glyph legend.
package key

import (
	"context"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
)

// Key prints what the task and subscription glyphs mean.
type Key struct {
	Printer *printers.PrettyPrint
}

// Do renders both legends.
func (k *Key) Do(ctx context.Context) error {
	k.Printer.NewLine()
	k.Printer.Legend("Tasks", glyph.Tasks())
	k.Printer.Legend("Subscriptions", glyph.Subscriptions())
	return nil
}

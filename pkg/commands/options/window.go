package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	DueWithin string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.DueWithin, "due-within", "",
		`Only show subscriptions due within a window, example: --due-within=1w or --due-within=10d.`)
}

// Days returns the window in days, or -1 when no window was asked for.
func (o *WindowOptions) Days() (int, error) {
	if o.DueWithin == "" {
		return -1, nil
	}
	days, _, err := timeutil.ParseWindow(o.DueWithin)
	return days, err
}

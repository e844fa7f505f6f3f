package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/calendar"
)

const (
	layoutLoose = "2006-1-2"
	layoutShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions, what string) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		fmt.Sprintf(`Specify the %s date, example: --on="2020-2-28" or --on="2/28".`, what))
}

// GetOn returns the flag as a YYYY-MM-DD date, or "" when it was not set.
// A month/day without a year lands on its next occurrence from today.
func (o *OnOptions) GetOn(cal *calendar.Calendar) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutLoose, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutShort, o.OnString, time.Local)
		if err != nil {
			return "", fmt.Errorf("%w: %q", calendar.ErrMalformedDate, o.OnString)
		}
		now := cal.Now()
		t = t.AddDate(now.Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if calendar.Format(t) < cal.Today() {
			t = t.AddDate(1, 0, 0)
		}
	}
	return calendar.Format(t), nil
}

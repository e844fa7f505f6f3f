package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/task"
)

// ZoneOptions
type ZoneOptions struct {
	Zone string
}

func AddZoneArgs(cmd *cobra.Command, o *ZoneOptions, def, usage string) {
	cmd.Flags().StringVarP(&o.Zone, "zone", "z", def, usage)
	_ = cmd.RegisterFlagCompletionFunc("zone", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(task.ZoneToday), string(task.ZoneTomorrow), string(task.ZoneBank)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// GetZone parses the flag; empty stays empty.
func (o *ZoneOptions) GetZone() (task.Zone, error) {
	if o.Zone == "" {
		return "", nil
	}
	return task.ParseZone(o.Zone)
}

// ViewOptions
type ViewOptions struct {
	View string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVar(&o.View, "view", "today",
		"Which tasks to list: today, tomorrow, bank, overdue, completed or all.")
	_ = cmd.RegisterFlagCompletionFunc("view", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"today", "tomorrow", "bank", "overdue", "completed", "all"}, cobra.ShellCompDirectiveNoFileComp
	})
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/overview"
)

func addOverview(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "overview",
		Aliases: []string{"today"},
		Short:   "Counts per zone, overdue tasks, payments due soon and this month's money.",
		Example: `
daybook overview
daybook today -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := overview.Overview{Service: s.Service, Printer: s.printer(ido.ShowID), Emit: emit(oo)}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

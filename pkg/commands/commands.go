package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("Tasks that follow the calendar, a once-a-day overdue triage, and monthly subscriptions on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addFocus(topLevel)
	addTriage(topLevel)
	addTask(topLevel)
	addSub(topLevel)
	addLedger(topLevel)
	addOverview(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

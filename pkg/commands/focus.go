package commands

import (
	"context"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/triage"
)

func addFocus(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	in := &options.InteractiveOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "focus",
		Short: base.Wrap80("Bring the day into focus: move tasks into today, tomorrow or overdue, and triage overdue tasks once a day."),
		Example: `
daybook focus
daybook focus --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			t := triage.Triage{
				Service:     s.Service,
				Printer:     s.printer(ido.ShowID),
				Stdin:       os.Stdin,
				Stdout:      nopWriteCloser{cmd.OutOrStdout()},
				Interactive: in.Interactive,
			}
			if oo.Structured() {
				// Structured output never prompts.
				t.Printer = nil
				t.IsTerminal = func() bool { return false }
				t.Interactive = false
			}
			if err := t.Do(context.Background()); err != nil {
				return oo.HandleError(err)
			}
			if oo.Structured() {
				return oo.HandleError(oo.Print(t.Result))
			}
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, in)
	options.AddShowIDArgs(cmd, ido)
	topLevel.AddCommand(cmd)
}

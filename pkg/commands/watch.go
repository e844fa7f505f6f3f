package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: base.Wrap80("Keep a focus session open, rerunning focus whenever another daybook process changes the store."),
		Example: `
daybook watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			w := watch.Watch{
				Service: s.Service,
				Source:  s.Disk,
				Printer: s.printer(false),
				Log:     s.Log,
			}
			return w.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where things are stored.",
		Example: `
daybook info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			ctx := context.Background()
			i := info.Info{
				Config:    s.Config,
				Disk:      s.Disk,
				Watermark: s.Service.Watermark.Load(ctx),
			}
			return i.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}

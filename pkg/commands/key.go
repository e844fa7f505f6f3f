package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print what the task and subscription glyphs mean",
		Example: `
daybook key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Printer: &printers.PrettyPrint{}}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

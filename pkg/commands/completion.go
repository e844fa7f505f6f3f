package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/subscription"
	"tableflip.dev/daybook/pkg/task"
)

func addCompletions(topLevel *cobra.Command) {
	zsh := false
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash or zsh completion scripts",
		Long: `To load completion run

. <(daybook completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daybook completion)

For zsh use --zsh and source the output from ~/.zshrc.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if zsh {
				return topLevel.GenZshCompletion(os.Stdout)
			}
			return topLevel.GenBashCompletion(os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&zsh, "zsh", false, "Generate zsh completions.")

	topLevel.AddCommand(cmd)
}

// taskCompletions offers open task ids, described by title.
func taskCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all := s.Service.TaskList(context.Background(), task.ViewAll)
	out := make([]string, 0, len(all))
	for _, t := range all {
		out = append(out, t.ID+"\t"+t.Title)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// subscriptionCompletions offers subscription ids, described by name.
func subscriptionCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	subs := s.Service.ListSubscriptions(context.Background(), subscription.SortName)
	out := make([]string, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub.ID+"\t"+sub.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

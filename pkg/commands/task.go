package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/tasks"
	"tableflip.dev/daybook/pkg/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Add, list and complete tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskList(cmd)
	addTaskDone(cmd)
	addTaskDelete(cmd)
	addTaskPurge(cmd)
	topLevel.AddCommand(cmd)
}

func addTaskAdd(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}
	zo := &options.ZoneOptions{}
	var note string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: base.Wrap80("Add a task. It lands in today unless --on names another day. Past days are overdue and later days go to the bank."),
		Example: `
daybook task add write the report
daybook task add call the bank --on=2/28
daybook task add renew passport --on=2025-6-1 --zone=bank
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn(s.Service.Calendar)
			if err != nil {
				return oo.HandleError(err)
			}
			zone, err := zo.GetZone()
			if err != nil {
				return oo.HandleError(err)
			}
			r := tasks.Add{
				Service: s.Service,
				Printer: s.printer(false),
				Emit:    emit(oo),
				Task: app.NewTask{
					Title: strings.Join(args, " "),
					Note:  note,
					Date:  date,
					Zone:  zone,
					Tags:  tags,
				},
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on, "task")
	options.AddZoneArgs(cmd, zo, "", "Put the task in the bank; today and tomorrow follow --on.")
	cmd.Flags().StringVar(&note, "note", "", "Attach a note to the task.")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag the task, repeatable.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTaskList(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	vo := &options.ViewOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in one view, after bringing zones up to date.",
		Example: `
daybook task list
daybook task list --view=overdue -k
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			view, err := task.ParseView(vo.View)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := tasks.List{
				Service: s.Service,
				Printer: s.printer(ido.ShowID),
				Emit:    emit(oo),
				View:    view,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTaskDone(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:               "done ID",
		Short:             "Toggle a task between open and done.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := tasks.Done{Service: s.Service, Emit: emit(oo), ID: args[0]}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTaskDelete(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:               "delete ID",
		Aliases:           []string{"rm"},
		Short:             "Delete a task.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := tasks.Delete{Service: s.Service, ID: args[0]}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTaskPurge(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove every completed task.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := tasks.Purge{Service: s.Service, Emit: emit(oo)}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

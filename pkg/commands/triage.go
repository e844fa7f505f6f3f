package commands

import (
	"context"
	"errors"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/runner/triage"
	"tableflip.dev/daybook/pkg/task"
)

func addTriage(topLevel *cobra.Command) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "triage",
		Short: base.Wrap80("Decide where today's overdue tasks go. Prompts even when stdin is not a terminal."),
		Example: `
daybook triage
daybook triage all --zone=bank
daybook triage reassign 1b9d6bcd --zone=today
daybook triage ack
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			t := triage.Triage{
				Service:     s.Service,
				Printer:     s.printer(ido.ShowID),
				Stdin:       os.Stdin,
				Stdout:      nopWriteCloser{cmd.OutOrStdout()},
				Interactive: true,
			}
			return t.Do(context.Background())
		},
	}
	options.AddShowIDArgs(cmd, ido)

	addTriageAck(cmd)
	addTriageReassign(cmd)
	addTriageAll(cmd)
	topLevel.AddCommand(cmd)
}

func addTriageAck(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "ack",
		Short: "Dismiss today's triage, leaving overdue tasks where they are.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			w, err := s.Service.Acknowledge(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.Structured() {
				return oo.HandleError(oo.Print(map[string]string{"watermark": w}))
			}
			s.printer(false).Title("triage settled through " + w)
			return nil
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTriageReassign(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	zo := &options.ZoneOptions{}
	cmd := &cobra.Command{
		Use:               "reassign ID...",
		Short:             "Move the given tasks to today, tomorrow or bank and settle today's triage.",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			zone, err := zo.GetZone()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			tasks, err := s.Service.Reassign(context.Background(), args, zone)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.Structured() {
				return oo.HandleError(oo.Print(tasks))
			}
			s.printer(false).Tasks(string(zone), task.Filter(tasks, task.View(zone)))
			return nil
		},
	}
	options.AddZoneArgs(cmd, zo, "today", "Where the tasks go: today, tomorrow or bank.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addTriageAll(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	zo := &options.ZoneOptions{}
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Move every overdue task to today, tomorrow or bank and settle today's triage.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			zone, err := zo.GetZone()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			ctx := context.Background()
			res, err := s.Service.Focus(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			decision := res.Decision
			if decision.Action != midnight.ActionTriage {
				// Already settled today; still allow a second pass.
				decision = midnight.Decision{Overdue: task.Overdue(res.Tasks)}
			}
			if len(decision.Overdue) == 0 {
				return oo.HandleError(errors.New("nothing is overdue"))
			}
			tasks, err := s.Service.ReassignAll(ctx, decision, zone)
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.Structured() {
				return oo.HandleError(oo.Print(tasks))
			}
			s.printer(false).Tasks(string(zone), task.Filter(tasks, task.View(zone)))
			return nil
		},
	}
	options.AddZoneArgs(cmd, zo, "bank", "Where the tasks go: today, tomorrow or bank.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/subs"
	"tableflip.dev/daybook/pkg/subscription"
)

func addSub(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "sub",
		Aliases: []string{"subs", "subscription"},
		Short:   "Track monthly subscriptions and their payments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSubAdd(cmd)
	addSubList(cmd)
	addSubPay(cmd)
	addSubActive(cmd, "pause", false)
	addSubActive(cmd, "resume", true)
	addSubHistory(cmd)
	topLevel.AddCommand(cmd)
}

func addSubAdd(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}
	var notes string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add NAME AMOUNT",
		Short: base.Wrap80("Add a monthly subscription. --on is the first due date and defaults to today."),
		Example: `
daybook sub add Streaming 12.99 --on=2025-1-31
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			due, err := on.GetOn(s.Service.Calendar)
			if err != nil {
				return oo.HandleError(err)
			}
			if due == "" {
				due = s.Service.Calendar.Today()
			}
			r := subs.Add{
				Service: s.Service,
				Printer: s.printer(false),
				Emit:    emit(oo),
				Subscription: app.NewSubscription{
					Name:    args[0],
					Amount:  amount,
					DueDate: due,
					Notes:   notes,
					Tags:    tags,
				},
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on, "first due")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag the subscription, repeatable.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSubList(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	wo := &options.WindowOptions{}
	ido := &options.IDOptions{}
	var sortBy string
	var month bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List subscriptions with their next due date.",
		Example: `
daybook sub list
daybook sub list --due-within=1w
daybook sub list --sort=amount
daybook sub list --calendar
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			key, err := subscription.ParseSortKey(sortBy)
			if err != nil {
				return oo.HandleError(err)
			}
			days, err := wo.Days()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := subs.List{
				Service:   s.Service,
				Printer:   s.printer(ido.ShowID),
				Emit:      emit(oo),
				Sort:      key,
				DueWithin: days,
				Calendar:  month,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "dueDate", "Order by dueDate, amount or name.")
	cmd.Flags().BoolVar(&month, "calendar", false, "Show this month's due dates on a calendar.")
	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSubPay(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:               "pay ID",
		Short:             base.Wrap80("Mark a subscription paid: record the payment, book the expense in the ledger and move the due date one month on."),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: subscriptionCompletions,
		Example: `
daybook sub pay 1b9d6bcd
daybook sub pay 1b9d6bcd --on=2025-2-1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			paidOn, err := on.GetOn(s.Service.Calendar)
			if err != nil {
				return oo.HandleError(err)
			}
			r := subs.Pay{
				Service: s.Service,
				Printer: s.printer(false),
				Emit:    emit(oo),
				ID:      args[0],
				PaidOn:  paidOn,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on, "payment")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSubActive(parent *cobra.Command, use string, active bool) {
	oo := &options.OutputOptions{}
	short := "Pause a subscription; paused ones can not be paid."
	if active {
		short = "Resume a paused subscription."
	}

	cmd := &cobra.Command{
		Use:               use + " ID",
		Short:             short,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: subscriptionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := subs.SetActive{Service: s.Service, Emit: emit(oo), ID: args[0], Active: active}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addSubHistory(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:               "history ID",
		Short:             "Show the payments made against a subscription.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: subscriptionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			r := subs.History{Service: s.Service, Printer: s.printer(false), Emit: emit(oo), ID: args[0]}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/runner/ledger"
)

func addLedger(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var month string
	var all bool

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show income and expenses for a month, subscription payments included.",
		Example: `
daybook ledger
daybook ledger --month=2025-02
daybook ledger --all
daybook ledger add salary 2000 --income
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			period := month
			switch {
			case all:
				period = ""
			case period == "":
				period = s.Service.Calendar.Today()[:7]
			default:
				if _, err := time.Parse("2006-01", period); err != nil {
					return oo.HandleError(fmt.Errorf("--month wants YYYY-MM: %w", err))
				}
			}
			r := ledger.Ledger{
				Service: s.Service,
				Printer: s.printer(false),
				Emit:    emit(oo),
				Period:  period,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show as YYYY-MM, defaults to this month.")
	cmd.Flags().BoolVar(&all, "all", false, "Show every entry.")
	options.AddOutputArg(cmd, oo)
	addLedgerAdd(cmd)
	topLevel.AddCommand(cmd)
}

func addLedgerAdd(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}
	var income, expense bool
	var tags []string

	cmd := &cobra.Command{
		Use:   "add TITLE AMOUNT",
		Short: base.Wrap80("Book an income or expense entry. Entries are expenses unless --income is set; --on defaults to today."),
		Example: `
daybook ledger add salary 2000 --income
daybook ledger add groceries 54.20 --on=2025-3-2
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if income && expense {
				return oo.HandleError(errors.New("--income and --expense can not be used together"))
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn(s.Service.Calendar)
			if err != nil {
				return oo.HandleError(err)
			}
			kind := finance.TypeExpense
			if income {
				kind = finance.TypeIncome
			}
			r := ledger.Add{
				Service: s.Service,
				Printer: s.printer(false),
				Emit:    emit(oo),
				Entry: app.NewEntry{
					Title:  strings.TrimSpace(args[0]),
					Amount: amount,
					Type:   kind,
					Date:   date,
					Tags:   tags,
				},
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on, "entry")
	cmd.Flags().BoolVar(&income, "income", false, "Book the entry as income.")
	cmd.Flags().BoolVar(&expense, "expense", false, "Book the entry as an expense, the default.")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag the entry, repeatable.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

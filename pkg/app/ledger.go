package app

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/finance"
)

// NewEntry is the ledger form.
type NewEntry struct {
	Title  string
	Amount decimal.Decimal
	Type   finance.Type
	// Date defaults to today.
	Date string
	Tags []string
}

// Validate checks the form before anything is stored.
func (n NewEntry) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&n.Amount, validation.By(positiveAmount)),
		validation.Field(&n.Type, validation.Required, validation.In(finance.TypeIncome, finance.TypeExpense)),
		validation.Field(&n.Date, validation.Date(calendar.LayoutISO)),
	)
}

// AddEntry books an income or expense line in the ledger.
func (s *Service) AddEntry(ctx context.Context, n NewEntry) (finance.Entry, error) {
	n.Title = strings.TrimSpace(n.Title)
	if err := n.Validate(); err != nil {
		return finance.Entry{}, fmt.Errorf("app: invalid ledger entry: %w", err)
	}
	if n.Date == "" {
		n.Date = s.Calendar.Today()
	}

	e := finance.Entry{
		ID:        s.newID(),
		Title:     n.Title,
		Amount:    n.Amount,
		Type:      n.Type,
		Date:      n.Date,
		CreatedAt: s.timestamp(),
		Tags:      n.Tags,
	}
	s.Finance.ReplaceAll(ctx, finance.Append(s.Finance.Load(ctx), e))
	return e, nil
}

// Ledger returns the finance entries, newest first, whose date starts with
// prefix.
func (s *Service) Ledger(ctx context.Context, prefix string) ([]finance.Entry, finance.Totals) {
	all := s.Finance.Load(ctx)
	out := make([]finance.Entry, 0, len(all))
	for _, e := range all {
		if strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	return out, finance.Sum(all, prefix)
}

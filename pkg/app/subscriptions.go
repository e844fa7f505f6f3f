package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/subscription"
)

// NewSubscription is the subscription form.
type NewSubscription struct {
	Name    string
	Amount  decimal.Decimal
	DueDate string
	Notes   string
	Tags    []string
}

// Validate checks the form before anything is stored.
func (n NewSubscription) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&n.Amount, validation.By(positiveAmount)),
		validation.Field(&n.DueDate, validation.Required, validation.Date(calendar.LayoutISO)),
	)
}

func positiveAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if !amount.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

// AddSubscription stores a new active subscription first due on DueDate.
func (s *Service) AddSubscription(ctx context.Context, n NewSubscription) (subscription.Subscription, error) {
	n.Name = strings.TrimSpace(n.Name)
	if err := n.Validate(); err != nil {
		return subscription.Subscription{}, fmt.Errorf("app: invalid subscription: %w", err)
	}
	now := s.timestamp()
	sub := subscription.Subscription{
		ID:             s.newID(),
		Name:           n.Name,
		Amount:         n.Amount,
		InitialDueDate: n.DueDate,
		NextDueDate:    n.DueDate,
		IsActive:       true,
		Notes:          strings.TrimSpace(n.Notes),
		PaymentHistory: []subscription.PaymentRecord{},
		CreatedAt:      now,
		UpdatedAt:      now,
		Tags:           n.Tags,
	}
	subs := s.Subscriptions.Load(ctx)
	s.Subscriptions.ReplaceAll(ctx, append(subs, sub))
	return sub, nil
}

// ListSubscriptions lists every subscription ordered by key.
func (s *Service) ListSubscriptions(ctx context.Context, key subscription.SortKey) []subscription.Subscription {
	return subscription.Sort(s.Subscriptions.Load(ctx), key)
}

// SetActive pauses or resumes a subscription.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (subscription.Subscription, error) {
	subs := s.Subscriptions.Load(ctx)
	i := subscription.Find(subs, id)
	if i < 0 {
		return subscription.Subscription{}, fmt.Errorf("%w: subscription %q", ErrNotFound, id)
	}
	subs[i].IsActive = active
	subs[i].UpdatedAt = s.timestamp()
	s.Subscriptions.ReplaceAll(ctx, subs)
	return subs[i], nil
}

// MarkPaid records a payment against subscription id on paidOn (today when
// empty), moves its due date forward one month and books the matching
// expense in the ledger.
func (s *Service) MarkPaid(ctx context.Context, id, paidOn string) (subscription.Subscription, subscription.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return subscription.Subscription{}, subscription.PaymentRecord{}, err
	}
	subs := s.Subscriptions.Load(ctx)
	i := subscription.Find(subs, id)
	if i < 0 {
		return subscription.Subscription{}, subscription.PaymentRecord{}, fmt.Errorf("%w: subscription %q", ErrNotFound, id)
	}
	if !subs[i].IsActive {
		return subs[i], subscription.PaymentRecord{}, fmt.Errorf("%w: %s", ErrInactive, subs[i].Name)
	}

	adv := s.advancer()
	updated, record, err := adv.MarkPaid(subs[i], paidOn)
	if err != nil {
		return subs[i], subscription.PaymentRecord{}, err
	}
	subs[i] = updated
	s.Subscriptions.ReplaceAll(ctx, subs)

	entries := s.Finance.Load(ctx)
	s.Finance.ReplaceAll(ctx, finance.Append(entries, adv.LedgerEntry(updated, record)))
	return updated, record, nil
}

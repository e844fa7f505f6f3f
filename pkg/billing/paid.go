package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/finance"
	"tableflip.dev/daybook/pkg/subscription"
)

// Advancer records payments against subscriptions.
type Advancer struct {
	Calendar *calendar.Calendar
	// NewID mints payment ids; uuid.NewString when nil.
	NewID func() string
}

func (a *Advancer) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}

// MarkPaid appends one payment dated paidOn (today when empty) and moves the
// next due date forward by exactly one clamped month. The payment counts as
// overdue when it was made after the due date it settles. The input is left
// untouched.
func (a *Advancer) MarkPaid(sub subscription.Subscription, paidOn string) (subscription.Subscription, subscription.PaymentRecord, error) {
	if paidOn == "" {
		paidOn = a.Calendar.Today()
	} else if _, err := calendar.Parse(paidOn); err != nil {
		return sub, subscription.PaymentRecord{}, err
	}

	next, err := AdvanceMonthly(sub.NextDueDate, 1)
	if err != nil {
		return sub, subscription.PaymentRecord{}, fmt.Errorf("billing: advance %s: %w", sub.ID, err)
	}

	record := subscription.PaymentRecord{
		ID:         a.newID(),
		PaidDate:   paidOn,
		Amount:     sub.Amount,
		WasOverdue: paidOn > sub.NextDueDate,
	}

	updated := sub.Clone()
	updated.NextDueDate = next
	updated.PaymentHistory = append(updated.PaymentHistory, record)
	updated.UpdatedAt = a.Calendar.Now().UTC().Format(time.RFC3339)
	return updated, record, nil
}

// LedgerEntry is the expense line that accompanies a payment.
func (a *Advancer) LedgerEntry(sub subscription.Subscription, record subscription.PaymentRecord) finance.Entry {
	return finance.Entry{
		ID:        "sub_" + record.ID,
		Title:     sub.Name + " Subscription",
		Amount:    record.Amount,
		Type:      finance.TypeExpense,
		Date:      record.PaidDate,
		CreatedAt: a.Calendar.Now().UTC().Format(time.RFC3339),
		Tags:      append([]string(nil), sub.Tags...),
	}
}

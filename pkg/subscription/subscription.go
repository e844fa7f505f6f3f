// Package subscription models recurring monthly payments.
package subscription

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentRecord is an immutable line in a subscription's payment history.
type PaymentRecord struct {
	ID         string          `json:"id"`
	PaidDate   string          `json:"paidDate"`
	Amount     decimal.Decimal `json:"amount"`
	WasOverdue bool            `json:"wasOverdue"`
}

// Subscription is a fixed amount due once a month.
type Subscription struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	InitialDueDate string          `json:"initialDueDate"`
	NextDueDate    string          `json:"nextDueDate"`
	IsActive       bool            `json:"isActive"`
	Notes          string          `json:"notes,omitempty"`
	PaymentHistory []PaymentRecord `json:"paymentHistory"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
	Tags           []string        `json:"tags,omitempty"`
}

// Clone returns a copy that shares no slices with s.
func (s Subscription) Clone() Subscription {
	if s.PaymentHistory != nil {
		s.PaymentHistory = append(make([]PaymentRecord, 0, len(s.PaymentHistory)), s.PaymentHistory...)
	}
	if s.Tags != nil {
		s.Tags = append([]string(nil), s.Tags...)
	}
	return s
}

// SortKey orders a subscription listing.
type SortKey string

const (
	SortDueDate SortKey = "dueDate"
	SortAmount  SortKey = "amount"
	SortName    SortKey = "name"
)

// ParseSortKey converts user input to a SortKey. Empty means due date.
func ParseSortKey(raw string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "due", "duedate":
		return SortDueDate, nil
	case "amount":
		return SortAmount, nil
	case "name":
		return SortName, nil
	}
	return "", fmt.Errorf("subscription: unknown sort key %q", raw)
}

// Sort returns a sorted copy: soonest due first, largest amount first, or by
// name.
func Sort(subs []Subscription, key SortKey) []Subscription {
	out := make([]Subscription, len(subs))
	for i, s := range subs {
		out[i] = s.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortAmount:
			return out[i].Amount.GreaterThan(out[j].Amount)
		case SortName:
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		default:
			return out[i].NextDueDate < out[j].NextDueDate
		}
	})
	return out
}

// Find returns the index of the subscription with id, or -1.
func Find(subs []Subscription, id string) int {
	for i, s := range subs {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Package finance holds the income and expense ledger.
package finance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Type is the direction of a ledger entry.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// ParseType converts user input to a Type.
func ParseType(raw string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(raw))); t {
	case TypeIncome, TypeExpense:
		return t, nil
	}
	return "", fmt.Errorf("finance: unknown entry type %q", raw)
}

// Entry is one ledger line.
type Entry struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      Type            `json:"type"`
	Date      string          `json:"date"`
	CreatedAt string          `json:"createdAt"`
	Tags      []string        `json:"tags,omitempty"`
}

// Append adds e to entries, keeping the newest date first.
func Append(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Totals summarises a ledger.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Balance is income minus expense.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Sum totals the entries whose date starts with prefix ("" for all, "2025-03"
// for a month).
func Sum(entries []Entry, prefix string) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		switch e.Type {
		case TypeIncome:
			totals.Income = totals.Income.Add(e.Amount)
		case TypeExpense:
			totals.Expense = totals.Expense.Add(e.Amount)
		}
	}
	return totals
}

// Package ledger derives summaries and rankings from a business's transactions.
//
// Every function here is pure: it reads its input slice, never modifies it,
// and keeps no state between calls, so it is safe for concurrent use.
// Transactions are bucketed by their UTC calendar date.
package ledger

import (
	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
)

// Summary is the income, expense and balance of a set of transactions.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Totals sums income and expense over txs. An empty input yields all zeros.
func Totals(txs []*entity.Transaction) Summary {
	var s summer
	for _, t := range txs {
		s.add(t)
	}

	return s.summary()
}

// summer accumulates income and expense.
type summer struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

func (s *summer) add(t *entity.Transaction) {
	if t == nil {
		return
	}

	switch t.Kind {
	case entity.KindIncome:
		s.income = s.income.Add(t.Amount)
	case entity.KindExpense:
		s.expense = s.expense.Add(t.Amount)
	}
}

func (s *summer) summary() Summary {
	return Summary{
		Income:  s.income,
		Expense: s.expense,
		Balance: s.income.Sub(s.expense),
	}
}

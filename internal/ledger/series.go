package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
)

// MonthBucket is one calendar month of an annual report.
type MonthBucket struct {
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// MonthlySeries partitions the transactions of year into twelve monthly
// buckets, January first. Months without data are zero. Transactions from
// other years are ignored.
func MonthlySeries(txs []*entity.Transaction, year int) []MonthBucket {
	var acc [12]summer
	for _, t := range txs {
		if t == nil {
			continue
		}
		d := t.Date.UTC()
		if d.Year() != year {
			continue
		}
		acc[d.Month()-1].add(t)
	}

	series := make([]MonthBucket, 12)
	for i := range acc {
		s := acc[i].summary()
		series[i] = MonthBucket{
			Month:   time.Month(i + 1),
			Income:  s.Income,
			Expense: s.Expense,
			Profit:  s.Balance,
		}
	}

	return series
}

// MonthSummary is the activity of one month that has at least one transaction.
type MonthSummary struct {
	Year    int
	Month   time.Month
	Label   string // "MM/YYYY"
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// RecentMonths returns up to n months that have transactions, most recent first.
// n <= 0 returns every month with data.
func RecentMonths(txs []*entity.Transaction, n int) []MonthSummary {
	type key struct {
		year  int
		month time.Month
	}

	index := make(map[key]int)
	var keys []key
	var acc []summer

	for _, t := range txs {
		if t == nil {
			continue
		}
		d := t.Date.UTC()
		k := key{year: d.Year(), month: d.Month()}
		i, ok := index[k]
		if !ok {
			i = len(keys)
			index[k] = i
			keys = append(keys, k)
			acc = append(acc, summer{})
		}
		acc[i].add(t)
	}

	months := make([]MonthSummary, len(keys))
	for i, k := range keys {
		s := acc[i].summary()
		months[i] = MonthSummary{
			Year:    k.year,
			Month:   k.month,
			Label:   fmt.Sprintf("%02d/%d", int(k.month), k.year),
			Income:  s.Income,
			Expense: s.Expense,
		}
	}

	sort.SliceStable(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}

		return months[i].Month > months[j].Month
	})

	if n > 0 && len(months) > n {
		months = months[:n]
	}

	return months
}

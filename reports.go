package deniverse

import (
	"sort"

	"github.com/deniverse/deniverse/date"
)

// Summary aggregates the ledger over one reporting range.
type Summary struct {
	Range      date.Range
	Income     Money
	Expense    Money // positive magnitude
	Net        Money
	EndBalance Money // wallet balance as of now, not recomputed per range
	Count      int
	// ByCategory holds per-category expense magnitudes, largest first.
	ByCategory []CategoryTotal
}

// CategoryTotal is one per-category aggregate line.
type CategoryTotal struct {
	Category FinanceCategory
	Total    Money // positive magnitude
}

// Summarize aggregates income, expenses, and per-category expense totals
// for the transactions dated inside the range.
func (s *FinanceStore) Summarize(r date.Range) *Summary {
	sum := &Summary{
		Range:      r,
		Income:     M(0, s.currency),
		Expense:    M(0, s.currency),
		EndBalance: s.walletBalance,
	}
	byCat := make(map[FinanceCategory]Money)
	for _, tx := range s.transactions {
		if !r.Contains(tx.Date) {
			continue
		}
		sum.Count++
		if tx.Amount.IsPositive() {
			sum.Income = sum.Income.Add(tx.Amount)
			continue
		}
		sum.Expense = sum.Expense.Add(tx.Amount.Neg())
		total, ok := byCat[tx.Category]
		if !ok {
			total = M(0, s.currency)
		}
		byCat[tx.Category] = total.Add(tx.Amount.Neg())
	}
	sum.Net = sum.Income.Sub(sum.Expense)

	for category, total := range byCat {
		sum.ByCategory = append(sum.ByCategory, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(sum.ByCategory, func(i, j int) bool {
		a, b := sum.ByCategory[i], sum.ByCategory[j]
		if a.Total.Equal(b.Total) {
			return a.Category < b.Category
		}
		return a.Total.GreaterThan(b.Total)
	})
	return sum
}

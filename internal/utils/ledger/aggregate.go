package ledger

import (
	"sort"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/financetime"
)

// MonthlySummaries groups transactions by UTC calendar month and sums income
// and expense amounts per group. One summary is produced per distinct
// (year, month) pair present, ordered chronologically ascending.
func MonthlySummaries(txns []domain.Transaction) []domain.MonthlySummary {
	type monthKey struct {
		year  int
		month int
	}
	groups := make(map[monthKey]*domain.MonthlySummary)

	for _, t := range txns {
		year, month := financetime.MonthOf(t.Date)
		k := monthKey{year: year, month: int(month)}
		s, ok := groups[k]
		if !ok {
			s = &domain.MonthlySummary{Month: month, Year: year}
			groups[k] = s
		}
		if t.TransactionType == domain.Income {
			s.Income += t.Amount
		} else {
			s.Expense += t.Amount
		}
	}

	out := make([]domain.MonthlySummary, 0, len(groups))
	for _, s := range groups {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// CategoryBreakdown sums expense amounts per category. Income transactions
// are ignored; every category of the closed set appears in the result, zero
// or not.
func CategoryBreakdown(txns []domain.Transaction) domain.CategoryBreakdown {
	var b domain.CategoryBreakdown
	for _, t := range txns {
		if t.TransactionType != domain.Expense {
			continue
		}
		b.Add(t.Category, t.Amount)
	}
	return b
}

// CategoryShares expands a breakdown into per-category rows with
// percentage-of-total-expenses, sorted descending by amount. Ties keep the
// canonical category order. When total expenses are zero every percentage
// is zero.
func CategoryShares(b domain.CategoryBreakdown) []domain.CategoryShare {
	total := b.Total()
	out := make([]domain.CategoryShare, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		share := domain.CategoryShare{Category: c, Amount: b.Amount(c)}
		if total > 0 {
			share.Percentage = float64(share.Amount) / float64(total) * 100
		}
		out = append(out, share)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

// Totals sums income and expenses and their signed difference. An empty
// input yields all zeros.
func Totals(txns []domain.Transaction) domain.Totals {
	var t domain.Totals
	for _, txn := range txns {
		if txn.TransactionType == domain.Income {
			t.Income += txn.Amount
		} else {
			t.Expense += txn.Amount
		}
	}
	t.Net = t.Income - t.Expense
	return t
}

// Report assembles the full date-range report structure from an
// already-scoped transaction set.
func Report(txns []domain.Transaction) domain.Report {
	return domain.Report{
		MonthlySummaries:   MonthlySummaries(txns),
		CategoryBreakdowns: []domain.CategoryBreakdown{CategoryBreakdown(txns)},
		Totals:             Totals(txns),
	}
}

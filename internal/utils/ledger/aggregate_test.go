package ledger_test

import (
	"testing"
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySummaries(t *testing.T) {
	txns := []domain.Transaction{
		txn(1, dayNanos(2024, time.February, 10), 5000, domain.Income, domain.CategorySalary),
		txn(2, dayNanos(2024, time.January, 15), 1000, domain.Expense, domain.CategoryFood),
		txn(3, dayNanos(2024, time.January, 20), 3000, domain.Income, domain.CategorySalary),
		txn(4, dayNanos(2024, time.February, 28), 700, domain.Expense, domain.CategoryTransport),
		txn(5, dayNanos(2023, time.December, 31), 200, domain.Expense, domain.CategoryOther),
	}

	got := ledger.MonthlySummaries(txns)
	require.Len(t, got, 3)

	// Chronologically ascending
	assert.Equal(t, domain.MonthlySummary{Month: time.December, Year: 2023, Income: 0, Expense: 200}, got[0])
	assert.Equal(t, domain.MonthlySummary{Month: time.January, Year: 2024, Income: 3000, Expense: 1000}, got[1])
	assert.Equal(t, domain.MonthlySummary{Month: time.February, Year: 2024, Income: 5000, Expense: 700}, got[2])
}

func TestMonthlySummaries_Empty(t *testing.T) {
	got := ledger.MonthlySummaries(nil)
	assert.Empty(t, got)
}

func TestCategoryBreakdown(t *testing.T) {
	txns := []domain.Transaction{
		txn(1, dayNanos(2024, time.January, 1), 9999, domain.Income, domain.CategorySalary),
		txn(2, dayNanos(2024, time.January, 2), 1000, domain.Expense, domain.CategoryFood),
		txn(3, dayNanos(2024, time.January, 3), 500, domain.Expense, domain.CategoryFood),
		txn(4, dayNanos(2024, time.January, 4), 300, domain.Expense, domain.CategoryUtilities),
	}

	b := ledger.CategoryBreakdown(txns)

	// Income never contributes, even in an expense-labelled category
	assert.Equal(t, int64(0), b.Salary)
	assert.Equal(t, int64(1500), b.Food)
	assert.Equal(t, int64(300), b.Utilities)
	assert.Equal(t, int64(0), b.Entertainment)
	assert.Equal(t, int64(1800), b.Total())
}

// The breakdown total must always equal the expense side of the totals
// computed from the same transaction set.
func TestCategoryBreakdown_TotalMatchesExpenseTotals(t *testing.T) {
	txns := []domain.Transaction{
		txn(1, dayNanos(2024, time.March, 1), 12345, domain.Income, domain.CategorySalary),
		txn(2, dayNanos(2024, time.March, 2), 678, domain.Expense, domain.CategoryEntertainment),
		txn(3, dayNanos(2024, time.March, 3), 90, domain.Expense, domain.CategoryOther),
		txn(4, dayNanos(2024, time.March, 4), 1200, domain.Expense, domain.CategoryTransport),
	}

	b := ledger.CategoryBreakdown(txns)
	totals := ledger.Totals(txns)

	assert.Equal(t, totals.Expense, b.Total())
}

func TestCategoryShares(t *testing.T) {
	var b domain.CategoryBreakdown
	b.Add(domain.CategoryFood, 600)
	b.Add(domain.CategoryTransport, 300)
	b.Add(domain.CategoryUtilities, 100)

	shares := ledger.CategoryShares(b)
	require.Len(t, shares, len(domain.Categories))

	// Sorted descending by amount
	assert.Equal(t, domain.CategoryFood, shares[0].Category)
	assert.InDelta(t, 60.0, shares[0].Percentage, 1e-9)
	assert.Equal(t, domain.CategoryTransport, shares[1].Category)
	assert.InDelta(t, 30.0, shares[1].Percentage, 1e-9)
	assert.Equal(t, domain.CategoryUtilities, shares[2].Category)
	assert.InDelta(t, 10.0, shares[2].Percentage, 1e-9)

	// Zero categories trail with zero percentage, canonical order preserved
	assert.Equal(t, domain.CategorySalary, shares[3].Category)
	assert.Equal(t, domain.CategoryOther, shares[4].Category)
	assert.Equal(t, domain.CategoryEntertainment, shares[5].Category)
}

func TestCategoryShares_ZeroTotal(t *testing.T) {
	shares := ledger.CategoryShares(domain.CategoryBreakdown{})
	require.Len(t, shares, len(domain.Categories))
	for _, s := range shares {
		assert.Zero(t, s.Amount)
		assert.Zero(t, s.Percentage)
	}
}

func TestTotals(t *testing.T) {
	t.Run("net may be negative", func(t *testing.T) {
		txns := []domain.Transaction{
			txn(1, dayNanos(2024, time.January, 1), 100, domain.Income, domain.CategorySalary),
			txn(2, dayNanos(2024, time.January, 2), 300, domain.Expense, domain.CategoryFood),
		}
		got := ledger.Totals(txns)
		assert.Equal(t, domain.Totals{Income: 100, Expense: 300, Net: -200}, got)
	})

	t.Run("empty input yields zeros", func(t *testing.T) {
		assert.Equal(t, domain.Totals{}, ledger.Totals(nil))
	})
}

func TestReport(t *testing.T) {
	txns := []domain.Transaction{
		txn(1, dayNanos(2024, time.January, 5), 10000, domain.Income, domain.CategorySalary),
		txn(2, dayNanos(2024, time.January, 10), 2500, domain.Expense, domain.CategoryFood),
	}

	report := ledger.Report(txns)

	require.Len(t, report.MonthlySummaries, 1)
	assert.Equal(t, int64(10000), report.MonthlySummaries[0].Income)
	require.Len(t, report.CategoryBreakdowns, 1)
	assert.Equal(t, int64(2500), report.CategoryBreakdowns[0].Food)
	assert.Equal(t, domain.Totals{Income: 10000, Expense: 2500, Net: 7500}, report.Totals)
}

func TestReport_EmptySet(t *testing.T) {
	report := ledger.Report(nil)

	assert.Empty(t, report.MonthlySummaries)
	require.Len(t, report.CategoryBreakdowns, 1)
	assert.Equal(t, domain.CategoryBreakdown{}, report.CategoryBreakdowns[0])
	assert.Equal(t, domain.Totals{}, report.Totals)
}

// Aggregation is a pure function of its input: running it twice over the same
// snapshot yields identical results.
func TestReport_Deterministic(t *testing.T) {
	txns := []domain.Transaction{
		txn(1, dayNanos(2024, time.April, 1), 100, domain.Income, domain.CategorySalary),
		txn(2, dayNanos(2024, time.April, 2), 200, domain.Expense, domain.CategoryOther),
		txn(3, dayNanos(2024, time.May, 3), 300, domain.Expense, domain.CategoryFood),
	}
	assert.Equal(t, ledger.Report(txns), ledger.Report(txns))
}

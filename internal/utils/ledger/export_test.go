package ledger_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	txns := []domain.Transaction{
		{
			TransactionID:   1,
			Date:            dayNanos(2024, time.January, 5),
			Amount:          123456,
			TransactionType: domain.Income,
			Category:        domain.CategorySalary,
			Description:     "January pay",
		},
		{
			TransactionID:   2,
			Date:            dayNanos(2024, time.January, 20),
			Amount:          2500,
			TransactionType: domain.Expense,
			Category:        domain.CategoryFood,
			Description:     "Lunch",
		},
	}

	got := ledger.ExportCSV(txns)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `Date,Type,Amount (INR),Category,Description`, lines[0])
	// Newest first; date labels contain a comma so they are quoted
	assert.Equal(t, `"Jan 20, 2024",expense,25.00,Food,Lunch`, lines[1])
	assert.Equal(t, `"Jan 5, 2024",income,1234.56,Salary,January pay`, lines[2])
}

func TestExportCSV_NoTrailingNewline(t *testing.T) {
	got := ledger.ExportCSV(nil)
	assert.Equal(t, `Date,Type,Amount (INR),Category,Description`, got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

// Descriptions containing delimiters, quotes, and newlines must survive a
// round trip through a standard CSV reader.
func TestExportCSV_EscapingRoundTrip(t *testing.T) {
	description := "a,\"b\"\nc"
	txns := []domain.Transaction{
		{
			TransactionID:   1,
			Date:            dayNanos(2024, time.March, 1),
			Amount:          100,
			TransactionType: domain.Expense,
			Category:        domain.CategoryOther,
			Description:     description,
		},
	}

	out := ledger.ExportCSV(txns)
	assert.Contains(t, out, `"a,""b""`)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, description, records[1][4])
}

func TestExportFilename(t *testing.T) {
	start := dayNanos(2024, time.January, 1)
	end := dayNanos(2024, time.March, 31)
	assert.Equal(t, "transactions_2024-01-01_to_2024-03-31.csv", ledger.ExportFilename(start, end))
}

func TestPrintableSummary(t *testing.T) {
	start := dayNanos(2024, time.January, 1)
	end := dayNanos(2024, time.January, 31)
	txns := []domain.Transaction{
		{
			TransactionID:   1,
			Date:            dayNanos(2024, time.January, 5),
			Amount:          500000,
			TransactionType: domain.Income,
			Category:        domain.CategorySalary,
			Description:     "Pay",
		},
		{
			TransactionID:   2,
			Date:            dayNanos(2024, time.January, 12),
			Amount:          150000,
			TransactionType: domain.Expense,
			Category:        domain.CategoryUtilities,
			Description:     "Electricity",
		},
	}

	s := ledger.PrintableSummary(txns, start, end)

	assert.Equal(t, "2024-01-01", s.StartDate)
	assert.Equal(t, "2024-01-31", s.EndDate)
	assert.Equal(t, int64(500000), s.TotalIncome)
	assert.Equal(t, int64(150000), s.TotalExpense)
	assert.Equal(t, int64(350000), s.Net)
	assert.False(t, s.NoData)

	require.Len(t, s.Rows, 2)
	// Newest first
	assert.Equal(t, int64(2), s.Rows[0].TransactionID)
	assert.Equal(t, "Jan 12, 2024", s.Rows[0].DateLabel)
	assert.Equal(t, "−₹1,500.00", s.Rows[0].SignedDisplay)
	assert.Equal(t, "Utilities", s.Rows[0].CategoryLabel)
	assert.Equal(t, "+₹5,000.00", s.Rows[1].SignedDisplay)
}

func TestPrintableSummary_NoData(t *testing.T) {
	start := dayNanos(2024, time.June, 1)
	end := dayNanos(2024, time.June, 30)

	s := ledger.PrintableSummary(nil, start, end)

	assert.True(t, s.NoData)
	assert.NotNil(t, s.Rows)
	assert.Empty(t, s.Rows)
	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalExpense)
	assert.Zero(t, s.Net)
}

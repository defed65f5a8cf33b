package ledger

import (
	"encoding/csv"
	"strings"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/financetime"
	"github.com/paisatrack/pft_backend/internal/utils/money"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"Date", "Type", "Amount (INR)", "Category", "Description"}

// ExportCSV renders transactions as a CSV document: fixed header, rows sorted
// by date descending, amounts as two-digit decimals, categories by their
// human-readable label. Fields containing commas, quotes, or newlines are
// quoted with internal quotes doubled; there is no trailing newline.
func ExportCSV(txns []domain.Transaction) string {
	sorted := Sort(txns, SortSpec{Key: SortByDate, Order: Descending})

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(csvHeader)
	for _, t := range sorted {
		_ = w.Write([]string{
			financetime.FormatDateLabel(t.Date),
			string(t.TransactionType),
			money.PlainAmount(t.Amount),
			t.Category.Label(),
			t.Description,
		})
	}
	w.Flush()
	return strings.TrimSuffix(sb.String(), "\n")
}

// ExportFilename returns the conventional download name for a range export,
// using ISO calendar dates: transactions_<start>_to_<end>.csv.
func ExportFilename(startNanos, endNanos int64) string {
	return "transactions_" + financetime.FormatDate(startNanos) + "_to_" + financetime.FormatDate(endNanos) + ".csv"
}

// PrintableSummary builds the printable report for a date range from an
// already-scoped transaction set: totals, newest-first rows with signed
// display amounts, and a NoData marker instead of an empty table.
func PrintableSummary(txns []domain.Transaction, startNanos, endNanos int64) domain.Summary {
	totals := Totals(txns)
	s := domain.Summary{
		StartDate:    financetime.FormatDate(startNanos),
		EndDate:      financetime.FormatDate(endNanos),
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
		Net:          totals.Net,
	}
	if len(txns) == 0 {
		s.NoData = true
		s.Rows = []domain.SummaryRow{}
		return s
	}

	sorted := Sort(txns, SortSpec{Key: SortByDate, Order: Descending})
	s.Rows = make([]domain.SummaryRow, len(sorted))
	for i, t := range sorted {
		sign := "+"
		if t.TransactionType == domain.Expense {
			sign = "−" // U+2212 minus sign, not an ASCII hyphen
		}
		s.Rows[i] = domain.SummaryRow{
			TransactionID: t.TransactionID,
			Date:          t.Date,
			DateLabel:     financetime.FormatDateLabel(t.Date),
			Type:          t.TransactionType,
			CategoryLabel: t.Category.Label(),
			Description:   t.Description,
			Amount:        t.Amount,
			SignedDisplay: sign + money.DisplayAmount(t.Amount),
		}
	}
	return s
}

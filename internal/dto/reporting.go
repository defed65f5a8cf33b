package dto

import (
	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/money"
)

// MonthlySummaryResponse represents one calendar month's income and expense
// totals in paise.
type MonthlySummaryResponse struct {
	Month          int    `json:"month"`
	Year           int    `json:"year"`
	Income         int64  `json:"income"`
	Expense        int64  `json:"expense"`
	DisplayIncome  string `json:"displayIncome"`
	DisplayExpense string `json:"displayExpense"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary to a DTO response
func ToMonthlySummaryResponse(s domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:          int(s.Month),
		Year:           s.Year,
		Income:         s.Income,
		Expense:        s.Expense,
		DisplayIncome:  money.DisplayAmount(s.Income),
		DisplayExpense: money.DisplayAmount(s.Expense),
	}
}

// ToListMonthlySummaryResponse converts a slice of domain.MonthlySummary to DTO responses
func ToListMonthlySummaryResponse(summaries []domain.MonthlySummary) []MonthlySummaryResponse {
	res := make([]MonthlySummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = ToMonthlySummaryResponse(s)
	}
	return res
}

// CategoryAmountResponse represents one expense category's total in paise.
type CategoryAmountResponse struct {
	Category      string `json:"category"`
	CategoryLabel string `json:"categoryLabel"`
	Amount        int64  `json:"amount"`
	DisplayAmount string `json:"displayAmount"`
}

// CategoryShareResponse represents one category's share of total expenses.
type CategoryShareResponse struct {
	Category      string  `json:"category"`
	CategoryLabel string  `json:"categoryLabel"`
	Amount        int64   `json:"amount"`
	DisplayAmount string  `json:"displayAmount"`
	Percentage    float64 `json:"percentage"`
}

// CategoryStatsResponse represents the expense breakdown report response.
type CategoryStatsResponse struct {
	Breakdown    []CategoryAmountResponse `json:"breakdown"`
	Shares       []CategoryShareResponse  `json:"shares"`
	Total        int64                    `json:"total"`
	DisplayTotal string                   `json:"displayTotal"`
}

// ToCategoryStatsResponse converts a domain breakdown and its shares to a DTO response
func ToCategoryStatsResponse(b *domain.CategoryBreakdown, shares []domain.CategoryShare) CategoryStatsResponse {
	breakdown := make([]CategoryAmountResponse, len(domain.Categories))
	for i, cat := range domain.Categories {
		amount := b.Amount(cat)
		breakdown[i] = CategoryAmountResponse{
			Category:      string(cat),
			CategoryLabel: cat.Label(),
			Amount:        amount,
			DisplayAmount: money.DisplayAmount(amount),
		}
	}

	shareResponses := make([]CategoryShareResponse, len(shares))
	for i, s := range shares {
		shareResponses[i] = CategoryShareResponse{
			Category:      string(s.Category),
			CategoryLabel: s.Category.Label(),
			Amount:        s.Amount,
			DisplayAmount: money.DisplayAmount(s.Amount),
			Percentage:    s.Percentage,
		}
	}

	total := b.Total()
	return CategoryStatsResponse{
		Breakdown:    breakdown,
		Shares:       shareResponses,
		Total:        total,
		DisplayTotal: money.DisplayAmount(total),
	}
}

// ReportResponse represents the full report over a date range.
type ReportResponse struct {
	FromDate          string                   `json:"fromDate"`
	ToDate            string                   `json:"toDate"`
	MonthlySummaries  []MonthlySummaryResponse `json:"monthlySummaries"`
	CategoryBreakdown []CategoryAmountResponse `json:"categoryBreakdown"`
	Totals            struct {
		Income         int64  `json:"income"`
		Expense        int64  `json:"expense"`
		Net            int64  `json:"net"`
		DisplayIncome  string `json:"displayIncome"`
		DisplayExpense string `json:"displayExpense"`
	} `json:"totals"`
}

// ToReportResponse converts a domain.Report to a DTO response
func ToReportResponse(report *domain.Report, fromDate, toDate string) ReportResponse {
	totals := report.Totals
	response := ReportResponse{
		FromDate:         fromDate,
		ToDate:           toDate,
		MonthlySummaries: ToListMonthlySummaryResponse(report.MonthlySummaries),
	}

	breakdown := make([]CategoryAmountResponse, 0, len(domain.Categories))
	for _, b := range report.CategoryBreakdowns {
		for _, cat := range domain.Categories {
			amount := b.Amount(cat)
			breakdown = append(breakdown, CategoryAmountResponse{
				Category:      string(cat),
				CategoryLabel: cat.Label(),
				Amount:        amount,
				DisplayAmount: money.DisplayAmount(amount),
			})
		}
	}
	response.CategoryBreakdown = breakdown

	response.Totals.Income = totals.Income
	response.Totals.Expense = totals.Expense
	response.Totals.Net = totals.Net
	response.Totals.DisplayIncome = money.DisplayAmount(totals.Income)
	response.Totals.DisplayExpense = money.DisplayAmount(totals.Expense)

	return response
}

// SummaryRowResponse is one printable line of the range summary.
type SummaryRowResponse struct {
	TransactionID int64  `json:"transactionID"`
	Date          int64  `json:"date"`
	DateLabel     string `json:"dateLabel"`
	Type          string `json:"type"`
	CategoryLabel string `json:"categoryLabel"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	SignedDisplay string `json:"signedDisplay"`
}

// SummaryResponse represents the printable range summary response.
type SummaryResponse struct {
	StartDate      string               `json:"startDate"`
	EndDate        string               `json:"endDate"`
	TotalIncome    int64                `json:"totalIncome"`
	TotalExpense   int64                `json:"totalExpense"`
	Net            int64                `json:"net"`
	DisplayIncome  string               `json:"displayIncome"`
	DisplayExpense string               `json:"displayExpense"`
	NoData         bool                 `json:"noData"`
	Rows           []SummaryRowResponse `json:"rows"`
}

// ToSummaryResponse converts a domain.Summary to a DTO response
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	rows := make([]SummaryRowResponse, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = SummaryRowResponse{
			TransactionID: row.TransactionID,
			Date:          row.Date,
			DateLabel:     row.DateLabel,
			Type:          string(row.Type),
			CategoryLabel: row.CategoryLabel,
			Description:   row.Description,
			Amount:        row.Amount,
			SignedDisplay: row.SignedDisplay,
		}
	}
	return SummaryResponse{
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		TotalIncome:    s.TotalIncome,
		TotalExpense:   s.TotalExpense,
		Net:            s.Net,
		DisplayIncome:  money.DisplayAmount(s.TotalIncome),
		DisplayExpense: money.DisplayAmount(s.TotalExpense),
		NoData:         s.NoData,
		Rows:           rows,
	}
}

package domain

import "time"

// MonthlySummary aggregates income and expense sums for one calendar month.
// Sums are in minor units.
type MonthlySummary struct {
	Month   time.Month `json:"month"`
	Year    int        `json:"year"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
}

// CategoryBreakdown holds per-category expense sums in minor units. Every
// category of the closed set is always present, zero or not.
type CategoryBreakdown struct {
	Salary        int64 `json:"salary"`
	Other         int64 `json:"other"`
	Entertainment int64 `json:"entertainment"`
	Food          int64 `json:"food"`
	Transport     int64 `json:"transport"`
	Utilities     int64 `json:"utilities"`
}

// Amount returns the sum recorded for the given category.
func (b CategoryBreakdown) Amount(c Category) int64 {
	switch c {
	case CategorySalary:
		return b.Salary
	case CategoryOther:
		return b.Other
	case CategoryEntertainment:
		return b.Entertainment
	case CategoryFood:
		return b.Food
	case CategoryTransport:
		return b.Transport
	case CategoryUtilities:
		return b.Utilities
	default:
		return 0
	}
}

// Add accumulates v into the given category's sum.
func (b *CategoryBreakdown) Add(c Category, v int64) {
	switch c {
	case CategorySalary:
		b.Salary += v
	case CategoryOther:
		b.Other += v
	case CategoryEntertainment:
		b.Entertainment += v
	case CategoryFood:
		b.Food += v
	case CategoryTransport:
		b.Transport += v
	case CategoryUtilities:
		b.Utilities += v
	}
}

// Total returns the sum across all categories.
func (b CategoryBreakdown) Total() int64 {
	return b.Salary + b.Other + b.Entertainment + b.Food + b.Transport + b.Utilities
}

// CategoryShare is one row of a percentage breakdown: a category, its expense
// sum, and its share of total expenses.
type CategoryShare struct {
	Category   Category `json:"category"`
	Amount     int64    `json:"amount"`
	Percentage float64  `json:"percentage"`
}

// Totals holds income/expense sums and their signed difference. Net may be
// negative.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"`
}

// Report is the full date-range report structure.
type Report struct {
	MonthlySummaries   []MonthlySummary    `json:"monthlySummaries"`
	CategoryBreakdowns []CategoryBreakdown `json:"categoryBreakdowns"`
	Totals             Totals              `json:"totals"`
}

// SummaryRow is one line of a printable report: a transaction with display
// strings precomputed.
type SummaryRow struct {
	TransactionID int64           `json:"transactionId"`
	Date          int64           `json:"date"`
	DateLabel     string          `json:"dateLabel"`
	Type          TransactionType `json:"type"`
	CategoryLabel string          `json:"categoryLabel"`
	Description   string          `json:"description"`
	Amount        int64           `json:"amount"`
	SignedDisplay string          `json:"signedDisplay"`
}

// Summary is the printable report for a date range. NoData is set instead of
// an empty table when no transactions fall in range.
type Summary struct {
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	TotalIncome  int64        `json:"totalIncome"`
	TotalExpense int64        `json:"totalExpense"`
	Net          int64        `json:"net"`
	NoData       bool         `json:"noData"`
	Rows         []SummaryRow `json:"rows"`
}

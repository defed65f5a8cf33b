package services

import (
	"context"
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the derived views over a caller's transactions.
// Every result is recomputed from the live transaction set on each call;
// nothing is cached.
type ReportingSvcFacade interface {
	// GenerateReport builds the full report for an inclusive date range.
	GenerateReport(ctx context.Context, userID string, startNanos, endNanos int64) (*domain.Report, error)

	// MonthlyStats aggregates one calendar month.
	MonthlyStats(ctx context.Context, userID string, month time.Month, year int) (*domain.MonthlySummary, error)

	// CategoryStats aggregates expense sums per category over a date range,
	// with percentage shares.
	CategoryStats(ctx context.Context, userID string, startNanos, endNanos int64) (*domain.CategoryBreakdown, []domain.CategoryShare, error)

	// ExportCSV renders the caller's transactions in range as a CSV document
	// and returns the conventional download filename alongside it.
	ExportCSV(ctx context.Context, userID string, startNanos, endNanos int64) (filename string, csvBody string, err error)

	// PrintableSummary builds the printable report for a date range.
	PrintableSummary(ctx context.Context, userID string, startNanos, endNanos int64) (*domain.Summary, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	portsrepo "github.com/paisatrack/pft_backend/internal/core/ports/repositories"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/utils/financetime"
	"github.com/paisatrack/pft_backend/internal/utils/ledger"
)

// reportingService implements the ReportingSvcFacade interface. It fetches a
// fresh snapshot of the caller's transactions for every query and delegates
// all computation to the pure ledger package.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{transactionRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) fetchRange(ctx context.Context, userID string, startNanos, endNanos int64) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsInRange(ctx, userID, startNanos, endNanos)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for report",
			slog.String("from", financetime.FormatDate(startNanos)),
			slog.String("to", financetime.FormatDate(endNanos)))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return txns, nil
}

func (s *reportingService) GenerateReport(ctx context.Context, userID string, startNanos, endNanos int64) (*domain.Report, error) {
	txns, err := s.fetchRange(ctx, userID, startNanos, endNanos)
	if err != nil {
		return nil, err
	}

	report := ledger.Report(txns)

	s.LogInfo(ctx, "Report generated",
		slog.String("from", financetime.FormatDate(startNanos)),
		slog.String("to", financetime.FormatDate(endNanos)),
		slog.Int("month_count", len(report.MonthlySummaries)))
	return &report, nil
}

func (s *reportingService) MonthlyStats(ctx context.Context, userID string, month time.Month, year int) (*domain.MonthlySummary, error) {
	startNanos := financetime.FromCalendarDate(year, month, 1)
	// Exclusive upper bound: first instant of the next month, minus one.
	endNanos := financetime.FromCalendarDate(year, month+1, 1) - 1

	txns, err := s.fetchRange(ctx, userID, startNanos, endNanos)
	if err != nil {
		return nil, err
	}

	summary := domain.MonthlySummary{Month: month, Year: year}
	totals := ledger.Totals(txns)
	summary.Income = totals.Income
	summary.Expense = totals.Expense
	return &summary, nil
}

func (s *reportingService) CategoryStats(ctx context.Context, userID string, startNanos, endNanos int64) (*domain.CategoryBreakdown, []domain.CategoryShare, error) {
	txns, err := s.fetchRange(ctx, userID, startNanos, endNanos)
	if err != nil {
		return nil, nil, err
	}

	breakdown := ledger.CategoryBreakdown(txns)
	return &breakdown, ledger.CategoryShares(breakdown), nil
}

func (s *reportingService) ExportCSV(ctx context.Context, userID string, startNanos, endNanos int64) (string, string, error) {
	txns, err := s.fetchRange(ctx, userID, startNanos, endNanos)
	if err != nil {
		return "", "", err
	}

	s.LogInfo(ctx, "CSV export generated", slog.Int("row_count", len(txns)))
	return ledger.ExportFilename(startNanos, endNanos), ledger.ExportCSV(txns), nil
}

func (s *reportingService) PrintableSummary(ctx context.Context, userID string, startNanos, endNanos int64) (*domain.Summary, error) {
	txns, err := s.fetchRange(ctx, userID, startNanos, endNanos)
	if err != nil {
		return nil, err
	}

	summary := ledger.PrintableSummary(txns, startNanos, endNanos)
	return &summary, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portsrepo "github.com/paisatrack/pft_backend/internal/core/ports/repositories"
	portssvc "github.com/paisatrack/pft_backend/internal/core/ports/services"
	"github.com/paisatrack/pft_backend/internal/utils/ledger"
	"github.com/paisatrack/pft_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateData enforces the transaction invariants before anything reaches
// storage: amount strictly positive, date a valid non-negative timestamp,
// type and category drawn from their closed sets.
func validateData(data domain.TransactionData) error {
	if data.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive minor-unit integer", apperrors.ErrInvalidAmount)
	}
	if data.Date < 0 {
		return fmt.Errorf("%w: date must be a non-negative timestamp", apperrors.ErrInvalidDate)
	}
	if !data.TransactionType.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, data.TransactionType)
	}
	if !data.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, data.Category)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, data domain.TransactionData) (int64, error) {
	if err := validateData(data); err != nil {
		s.LogDebug(ctx, "Transaction payload rejected", slog.String("error", err.Error()))
		return 0, err
	}

	id, err := s.transactionRepo.CreateTransaction(ctx, userID, data, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction")
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", id))
	return id, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, criteria ledger.Criteria, spec ledger.SortSpec) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsForUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return ledger.Sort(ledger.Filter(txns, criteria), spec), nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID int64, data domain.TransactionData) error {
	if err := validateData(data); err != nil {
		return err
	}

	// Full replace; the later of two concurrent updates silently wins.
	if err := s.transactionRepo.UpdateTransaction(ctx, userID, transactionID, data, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to update transaction %d: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", transactionID))
	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}

func (s *transactionService) NormalizeAmount(ctx context.Context, amount, exchangeRate decimal.Decimal, currencyCode string) (int64, error) {
	minorUnits, err := money.Normalize(amount, exchangeRate, currencyCode)
	if err != nil {
		s.LogDebug(ctx, "Amount normalization rejected",
			slog.String("currency", currencyCode),
			slog.String("error", err.Error()))
		return 0, err
	}
	return minorUnits, nil
}

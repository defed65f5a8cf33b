package services

import (
	"context"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/ledger"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade exposes the transaction lifecycle: validated CRUD
// against storage plus the client-side currency normalization preview.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction, returning
	// its assigned id. The amount must already be normalized to minor units.
	CreateTransaction(ctx context.Context, userID string, data domain.TransactionData) (int64, error)

	// GetTransaction retrieves one transaction owned by the caller.
	GetTransaction(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves the caller's transactions filtered and
	// sorted per the given criteria and spec.
	ListTransactions(ctx context.Context, userID string, criteria ledger.Criteria, spec ledger.SortSpec) ([]domain.Transaction, error)

	// UpdateTransaction replaces every field of an existing transaction.
	UpdateTransaction(ctx context.Context, userID string, transactionID int64, data domain.TransactionData) error

	// DeleteTransaction removes a transaction; unknown ids are an error.
	DeleteTransaction(ctx context.Context, userID string, transactionID int64) error

	// NormalizeAmount converts a user-entered amount in an arbitrary currency
	// into base-currency minor units. Pure validation plus arithmetic; never
	// touches storage.
	NormalizeAmount(ctx context.Context, amount, exchangeRate decimal.Decimal, currencyCode string) (int64, error)
}

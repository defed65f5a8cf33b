package repositories

import (
	"context"
	"time"

	"github.com/paisatrack/pft_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data. Every
// operation is scoped to the owning user; a transaction is never visible to
// another principal.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsForUser retrieves every transaction owned by the user.
	// Ordering is unspecified; callers sort and filter.
	ListTransactionsForUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// ListTransactionsInRange retrieves the user's transactions whose date
	// falls within the inclusive nanosecond bounds.
	ListTransactionsInRange(ctx context.Context, userID string, startNanos, endNanos int64) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// CreateTransaction persists a new transaction and returns its assigned
	// identifier.
	CreateTransaction(ctx context.Context, userID string, data domain.TransactionData, now time.Time) (int64, error)

	// UpdateTransaction replaces every data field of an existing transaction.
	// Returns apperrors.ErrNotFound if the id is unknown to this user.
	UpdateTransaction(ctx context.Context, userID string, transactionID int64, data domain.TransactionData, now time.Time) error

	// DeleteTransaction removes a transaction. Deleting an unknown id is an
	// error, not a no-op.
	DeleteTransaction(ctx context.Context, userID string, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

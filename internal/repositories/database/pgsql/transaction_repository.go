package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paisatrack/pft_backend/internal/apperrors"
	"github.com/paisatrack/pft_backend/internal/core/domain"
	portsrepo "github.com/paisatrack/pft_backend/internal/core/ports/repositories"
	"github.com/paisatrack/pft_backend/internal/models"
	"github.com/paisatrack/pft_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, date_ns, amount_paise, transaction_type, category, description, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.TransactionType,
		&m.Category,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, userID string, data domain.TransactionData, now time.Time) (int64, error) {
	m := mapping.ToModelTransaction(domain.Transaction{
		UserID:          userID,
		Date:            data.Date,
		Amount:          data.Amount,
		TransactionType: data.TransactionType,
		Category:        data.Category,
		Description:     data.Description,
	})

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
        INSERT INTO transactions (user_id, date_ns, amount_paise, transaction_type, category, description, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING transaction_id;
    `
	var transactionID int64
	err = tx.QueryRow(ctx, query,
		m.UserID,
		m.Date,
		m.Amount,
		m.TransactionType,
		m.Category,
		m.Description,
		now,
	).Scan(&transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return transactionID, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactionsForUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY date_ns ASC, transaction_id ASC;
    `
	return r.queryTransactions(ctx, query, userID)
}

func (r *PgxTransactionRepository) ListTransactionsInRange(ctx context.Context, userID string, startNanos, endNanos int64) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND date_ns >= $2 AND date_ns <= $3
        ORDER BY date_ns ASC, transaction_id ASC;
    `
	return r.queryTransactions(ctx, query, userID, startNanos, endNanos)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, userID string, transactionID int64, data domain.TransactionData, now time.Time) error {
	query := `
        UPDATE transactions
        SET date_ns = $1, amount_paise = $2, transaction_type = $3, category = $4, description = $5, last_updated_at = $6
        WHERE transaction_id = $7 AND user_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		data.Date,
		data.Amount,
		string(data.TransactionType),
		string(data.Category),
		data.Description,
		now,
		transactionID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d not found: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	query := `
        DELETE FROM transactions
        WHERE transaction_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d not found: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

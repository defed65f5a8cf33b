package mapping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/models"
	"github.com/paisatrack/pft_backend/internal/utils/mapping"
)

func TestToModelTransaction(t *testing.T) {
	created := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	d := domain.Transaction{
		TransactionID:   7,
		UserID:          "user-1",
		Date:            1714564800000000000,
		Amount:          150000,
		TransactionType: domain.Expense,
		Category:        domain.CategoryFood,
		Description:     "Groceries",
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			LastUpdatedAt: created,
		},
	}

	m := mapping.ToModelTransaction(d)

	assert.Equal(t, int64(7), m.TransactionID)
	assert.Equal(t, "user-1", m.UserID)
	assert.Equal(t, int64(1714564800000000000), m.Date)
	assert.Equal(t, int64(150000), m.Amount)
	assert.Equal(t, "expense", m.TransactionType)
	assert.Equal(t, "food", m.Category)
	assert.Equal(t, "Groceries", m.Description)
	assert.Equal(t, created, m.CreatedAt)
}

func TestTransactionMappingRoundTrip(t *testing.T) {
	m := models.Transaction{
		TransactionID:   3,
		UserID:          "user-2",
		Date:            1700000000000000000,
		Amount:          99,
		TransactionType: "income",
		Category:        "salary",
		Description:     "",
	}

	back := mapping.ToModelTransaction(mapping.ToDomainTransaction(m))

	assert.Equal(t, m, back)
}

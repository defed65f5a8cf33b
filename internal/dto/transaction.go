package dto

import (
	"github.com/paisatrack/pft_backend/internal/core/domain"
	"github.com/paisatrack/pft_backend/internal/utils/financetime"
	"github.com/paisatrack/pft_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date is UTC epoch nanoseconds and Amount is in paise, always positive.
type CreateTransactionRequest struct {
	Date            int64  `json:"date" binding:"min=0"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	TransactionType string `json:"transactionType" binding:"required,txntype"`
	Category        string `json:"category" binding:"required,txncategory"`
	Description     string `json:"description" binding:"max=500"`
}

// ToTransactionData converts the request to the domain write shape.
func (r CreateTransactionRequest) ToTransactionData() domain.TransactionData {
	return domain.TransactionData{
		Date:            r.Date,
		Amount:          r.Amount,
		TransactionType: domain.TransactionType(r.TransactionType),
		Category:        domain.Category(r.Category),
		Description:     r.Description,
	}
}

// UpdateTransactionRequest replaces every data field of an existing
// transaction. Partial updates are not supported.
type UpdateTransactionRequest struct {
	Date            int64  `json:"date" binding:"min=0"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	TransactionType string `json:"transactionType" binding:"required,txntype"`
	Category        string `json:"category" binding:"required,txncategory"`
	Description     string `json:"description" binding:"max=500"`
}

// ToTransactionData converts the request to the domain write shape.
func (r UpdateTransactionRequest) ToTransactionData() domain.TransactionData {
	return domain.TransactionData{
		Date:            r.Date,
		Amount:          r.Amount,
		TransactionType: domain.TransactionType(r.TransactionType),
		Category:        domain.Category(r.Category),
		Description:     r.Description,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
// Type and Category accept "all" to disable that filter; StartDate and
// EndDate are calendar dates (YYYY-MM-DD) expanded to full-day bounds.
type ListTransactionsParams struct {
	Type      string `form:"type,default=all"`
	Category  string `form:"category,default=all"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	SortBy    string `form:"sortBy,default=date" binding:"omitempty,oneof=date amount"`
	Order     string `form:"order,default=desc" binding:"omitempty,oneof=asc desc"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   int64  `json:"transactionID"`
	Date            int64  `json:"date"`
	DateLabel       string `json:"dateLabel"`
	Amount          int64  `json:"amount"`
	DisplayAmount   string `json:"displayAmount"`
	TransactionType string `json:"transactionType"`
	Category        string `json:"category"`
	CategoryLabel   string `json:"categoryLabel"`
	Description     string `json:"description"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Date:            txn.Date,
		DateLabel:       financetime.FormatDateLabel(txn.Date),
		Amount:          txn.Amount,
		DisplayAmount:   money.DisplayAmount(txn.Amount),
		TransactionType: string(txn.TransactionType),
		Category:        string(txn.Category),
		CategoryLabel:   txn.Category.Label(),
		Description:     txn.Description,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// NormalizeAmountRequest defines the data needed to convert a foreign
// currency amount into paise.
type NormalizeAmountRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	CurrencyCode string          `json:"currencyCode" binding:"required"`
}

// NormalizeAmountResponse returns the normalized amount in paise.
type NormalizeAmountResponse struct {
	Amount        int64  `json:"amount"`
	DisplayAmount string `json:"displayAmount"`
}

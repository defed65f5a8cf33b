package models

// Transaction is the persistence shape of a single income or expense entry.
// Amount is stored in paise (minor units) and Date as UTC epoch nanoseconds,
// so no floating point ever touches the ledger.
type Transaction struct {
	TransactionID   int64  `db:"transaction_id"` // Primary key, bigserial
	UserID          string `db:"user_id"`        // FK -> users.user_id (Not Null)
	Date            int64  `db:"date_ns"`        // UTC epoch nanoseconds
	Amount          int64  `db:"amount_paise"`   // Always positive; sign comes from the type
	TransactionType string `db:"transaction_type"`
	Category        string `db:"category"`
	Description     string `db:"description"`
	AuditFields
}

package domain

// TransactionType indicates whether a transaction is income or an expense.
// The sign of an amount is never encoded in the amount itself; direction is
// carried exclusively by this type.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the enumerated transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Category is the closed set of transaction categories.
type Category string

const (
	CategorySalary        Category = "salary"
	CategoryOther         Category = "other"
	CategoryEntertainment Category = "entertainment"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
)

// Categories lists every category in its canonical order. Breakdowns and
// share listings iterate this slice so output order is deterministic.
var Categories = []Category{
	CategorySalary,
	CategoryOther,
	CategoryEntertainment,
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable form of the category, used in CSV exports
// and printable reports.
func (c Category) Label() string {
	switch c {
	case CategorySalary:
		return "Salary"
	case CategoryOther:
		return "Other"
	case CategoryEntertainment:
		return "Entertainment"
	case CategoryFood:
		return "Food"
	case CategoryTransport:
		return "Transport"
	case CategoryUtilities:
		return "Utilities"
	default:
		return string(c)
	}
}

// Transaction is a single recorded income or expense entry.
// Amount is a positive integer in base-currency minor units (paise) and Date
// is a UTC epoch timestamp at nanosecond resolution.
type Transaction struct {
	TransactionID   int64           `json:"transactionId"`
	UserID          string          `json:"-"`
	Date            int64           `json:"date"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Category        Category        `json:"category"`
	Description     string          `json:"description"`
	AuditFields
}

// TransactionData is the create/update payload: a Transaction minus its
// identity. Updates are full replaces, never partial patches.
type TransactionData struct {
	Date            int64           `json:"date"`
	Amount          int64           `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Category        Category        `json:"category"`
	Description     string          `json:"description"`
}

// Package ledger is the pure transaction computation engine: filtering,
// stable sorting, monthly and category aggregation, and report/export
// formatting. Every function treats its input as an immutable snapshot and
// returns fresh values; nothing here performs I/O.
package ledger

import (
	"sort"

	"github.com/paisatrack/pft_backend/internal/core/domain"
)

// TypeAll and CategoryAll are the wildcard filter values.
const (
	TypeAll     = "all"
	CategoryAll = "all"
)

// Criteria is a conjunctive predicate set over transactions. Zero-value or
// "all" type/category fields match everything; nil date bounds are open.
// Date bounds are inclusive nanosecond timestamps.
type Criteria struct {
	Type       string
	Category   string
	StartNanos *int64
	EndNanos   *int64
}

// Matches reports whether the transaction satisfies every predicate.
func (c Criteria) Matches(t domain.Transaction) bool {
	if c.Type != "" && c.Type != TypeAll && string(t.TransactionType) != c.Type {
		return false
	}
	if c.Category != "" && c.Category != CategoryAll && string(t.Category) != c.Category {
		return false
	}
	if c.StartNanos != nil && t.Date < *c.StartNanos {
		return false
	}
	if c.EndNanos != nil && t.Date > *c.EndNanos {
		return false
	}
	return true
}

// Filter returns the transactions matching the criteria, in input order. The
// input slice is never mutated; an empty result is valid.
func Filter(txns []domain.Transaction, c Criteria) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortKey selects the comparison field for Sort.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

// SortOrder selects the direction for Sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortSpec pairs a sort key with a direction.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// Sort returns a new slice ordered by the spec. The sort is stable: equal
// keys keep their original relative order, with no secondary tie-break key.
func Sort(txns []domain.Transaction, spec SortSpec) []domain.Transaction {
	out := make([]domain.Transaction, len(txns))
	copy(out, txns)

	key := func(t domain.Transaction) int64 {
		if spec.Key == SortByAmount {
			return t.Amount
		}
		return t.Date
	}
	sort.SliceStable(out, func(i, j int) bool {
		if spec.Order == Descending {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

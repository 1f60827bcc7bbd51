// Package models defines the transaction record extracted from a statement.
package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a record as a credit or a debit. Its value is the tag word
// printed on the statement.
type Kind string

const (
	KindCredit Kind = "Crédito"
	KindDebit  Kind = "Débito"
)

// Code returns the CRDT/DBIT indicator for k, or "" for an unknown kind.
func (k Kind) Code() string {
	switch k {
	case KindCredit:
		return TransactionTypeCredit
	case KindDebit:
		return TransactionTypeDebit
	default:
		return ""
	}
}

// IsValid reports whether k is one of the two known kinds.
func (k Kind) IsValid() bool {
	return k == KindCredit || k == KindDebit
}

func (k Kind) String() string {
	return string(k)
}

// TransactionRecord is one line item of a statement.
//
// Date holds the normalized calendar date; its zero value marks a date that
// could not be normalized. DateOriginal always keeps the text matched on the
// statement.
type TransactionRecord struct {
	Date         time.Time
	DateOriginal string
	Kind         Kind
	Description  string
	Amount       decimal.Decimal
}

// HasDate reports whether the record carries a normalized date.
func (r TransactionRecord) HasDate() bool {
	return !r.Date.IsZero()
}

// WithDate returns a copy of r with Date set to d.
func (r TransactionRecord) WithDate(d time.Time) TransactionRecord {
	r.Date = d
	return r
}

// SortNewestFirst returns a copy of records ordered by date, newest first.
// The sort is stable and records without a date go last.
func SortNewestFirst(records []TransactionRecord) []TransactionRecord {
	out := make([]TransactionRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		return a.Date.After(b.Date)
	})
	return out
}

// DateRange returns the earliest and latest dates among records. ok is
// false when no record has a date.
func DateRange(records []TransactionRecord) (first, last time.Time, ok bool) {
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		if !ok || r.Date.Before(first) {
			first = r.Date
		}
		if !ok || r.Date.After(last) {
			last = r.Date
		}
		ok = true
	}
	return first, last, ok
}

// Package aggregation turns already-loaded financial records into period
// scoped summaries: filtering, grouping, running balances and the
// budget, goal and card evaluators layered on top.
//
// Every function in this package is pure. Inputs are never mutated and the
// only time dependency is the clock.Clock handed to a Resolver.
package aggregation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a record.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is income or expense.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Source identifies which persisted entity a Record was derived from.
type Source string

const (
	SourceTransaction       Source = "transaction"
	SourceDebt              Source = "debt"
	SourceReceivablePayment Source = "receivable_payment"
)

// TagRef is a tag snapshot copied into a record when it was written.
type TagRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Record is a dated financial entry. Debts are expenses and receivable
// payments are income.
type Record struct {
	ID          string
	Source      Source
	Amount      decimal.Decimal
	Date        time.Time
	Kind        Kind
	CategoryID  string
	Tags        []TagRef
	AccountID   string
	CardID      string
	Description string
	Notes       string
}

// CategoryInfo carries the display attributes of a category.
type CategoryInfo struct {
	Name  string
	Color string
}

// Labels resolves group keys to display attributes. Location, when set,
// decides which calendar day or month a record falls in.
type Labels struct {
	Categories map[string]CategoryInfo
	Location   *time.Location
}

var (
	// ErrInvalidRange is matched by every *RangeError.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrUnknownSelector is returned for period selectors the resolver does not know.
	ErrUnknownSelector = errors.New("unknown period selector")
	// ErrUnsupportedGrouping is returned when a grouping dimension does not apply.
	ErrUnsupportedGrouping = errors.New("unsupported grouping")
)

// RangeError describes a rejected custom period.
type RangeError struct {
	From   *time.Time
	To     *time.Time
	Reason string
}

func (e *RangeError) Error() string {
	return "invalid date range: " + e.Reason
}

// Is lets errors.Is(err, ErrInvalidRange) match.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

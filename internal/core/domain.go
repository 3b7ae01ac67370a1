package core

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Date is a calendar date. The time-of-day portion is always midnight UTC.
	Date struct {
		time.Time
	}

	// Transaction is one normalized expense row. Date and CreatedAt are nil
	// when the stored text could not be parsed; such rows stay in the raw
	// listing but are excluded from date-bounded views.
	Transaction struct {
		ID          int64
		UserID      string
		Category    string
		Amount      decimal.Decimal
		Currency    string
		Date        *Date
		Description string
		Tags        string
		CreatedAt   *time.Time
	}

	// Dataset is the normalized in-memory record set for one refresh cycle.
	// It is replaced wholesale on every cache miss, never patched.
	Dataset struct {
		Transactions []Transaction
		LoadedAt     time.Time
	}
)

var (
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidAmount = errors.New("invalid amount")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Validate reports whether the record is well formed. A well-formed
// transaction always carries a non-empty category.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Empty reports whether the dataset holds no rows. An empty dataset is the
// uniform "no data" signal, not an error condition.
func (ds Dataset) Empty() bool {
	return len(ds.Transactions) == 0
}

// Len returns the number of rows in the dataset.
func (ds Dataset) Len() int {
	return len(ds.Transactions)
}

// Head returns the first n rows in source order, for the raw preview.
func (ds Dataset) Head(n int) []Transaction {
	if n > len(ds.Transactions) {
		n = len(ds.Transactions)
	}
	return ds.Transactions[:n]
}

// Categories returns the distinct categories present, sorted ascending.
func (ds Dataset) Categories() []string {
	seen := make(map[string]struct{})
	for _, t := range ds.Transactions {
		if t.Category != "" {
			seen[t.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// DateBounds returns the minimum and maximum parseable dates in the dataset.
// ok is false when no row has a parseable date.
func (ds Dataset) DateBounds() (min, max Date, ok bool) {
	for _, t := range ds.Transactions {
		if t.Date == nil {
			continue
		}
		if !ok {
			min, max, ok = *t.Date, *t.Date, true
			continue
		}
		if t.Date.Before(min) {
			min = *t.Date
		}
		if t.Date.After(max) {
			max = *t.Date
		}
	}
	return min, max, ok
}

// Package core provides the normalized expense domain: typed transaction
// records plus the defensive parsers that coerce raw store text into them.
package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when parsing the stored date text. External
// writers are not consistent about format, so be tolerant here.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// timestampLayouts cover the created_at column, which some writers store with
// sub-second precision.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	time.RFC3339Nano,
}

// ParseDate parses stored date text into a calendar date. A nil result means
// the text was unparseable; the row is kept but excluded from date-bounded
// views.
func ParseDate(s string) *Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := DateOf(t)
			return &d
		}
	}
	return nil
}

// ParseTimestamp parses stored timestamp text. Nil means unparseable.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseAmount parses a signed decimal amount. It accepts both dot and comma
// decimal separators. Returns ErrInvalidAmount for anything else; amounts are
// currency-agnostic so no symbol handling happens here.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

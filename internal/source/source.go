// Package source defines the read-only data access contract shared by the
// embedded sqlite store and the networked postgres store.
package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spendlive/internal/refresh"
)

// Row is one raw transactions row as stored. Everything except the id stays
// text until normalization so that a malformed field never aborts a fetch.
type Row struct {
	ID          int64
	UserID      string
	Category    string
	Amount      string
	Currency    string
	Date        string
	Description string
	Tags        string
	CreatedAt   string
}

var (
	// ErrConnection means the store was unreachable. The pipeline degrades
	// to an empty dataset; the next user interaction retries from scratch.
	ErrConnection = errors.New("store unreachable")

	// ErrQuery means the store answered but the query failed.
	ErrQuery = errors.New("query failed")
)

// Diagnostics describes the live store for the dashboard's diagnostics panel.
type Diagnostics struct {
	Backend   string
	Path      string
	Host      string
	Exists    bool
	SizeBytes int64
	ModTime   time.Time
}

// Source fetches all transaction rows and reports a change fingerprint.
// FetchAll never panics past this boundary: any failure yields an empty row
// slice plus an error the caller can report.
type Source interface {
	refresh.Detector

	FetchAll(ctx context.Context) ([]Row, error)
	Diagnostics() Diagnostics
	Close() error
}

// SelectColumns is the column list both backends read, in Row field order.
const SelectColumns = "id, user_id, category, amount, currency, date, description, tags, created_at"

// CollectRows drains a result set of SelectColumns into raw rows. Nullable
// columns collapse to the empty string; normalization decides what that means.
func CollectRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var userID, category, amount, currency, date, description, tags, createdAt sql.NullString
		if err := rows.Scan(&r.ID, &userID, &category, &amount, &currency, &date, &description, &tags, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		r.UserID = userID.String
		r.Category = category.String
		r.Amount = amount.String
		r.Currency = currency.String
		r.Date = date.String
		r.Description = description.String
		r.Tags = tags.String
		r.CreatedAt = createdAt.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return out, nil
}

// Package pipeline turns raw store rows into the normalized dataset and
// derives the filtered views, summaries and exports the dashboard renders.
package pipeline

import (
	"log/slog"
	"time"

	"spendlive/internal/core"
	"spendlive/internal/source"
)

// Normalize coerces raw rows into the canonical typed record set. Date and
// created_at parse failures null the field but keep the row; a missing
// category or unparseable amount makes the row malformed and drops it. An
// empty or nil input yields an empty dataset, never an error — that is the
// uniform "no data" signal.
func Normalize(rows []source.Row, defaultCurrency string) core.Dataset {
	ds := core.Dataset{LoadedAt: time.Now()}
	if len(rows) == 0 {
		return ds
	}

	dropped := 0
	ds.Transactions = make([]core.Transaction, 0, len(rows))
	for _, r := range rows {
		amount, err := core.ParseAmount(r.Amount)
		if err != nil {
			dropped++
			continue
		}
		t := core.Transaction{
			ID:          r.ID,
			UserID:      r.UserID,
			Category:    r.Category,
			Amount:      amount,
			Currency:    r.Currency,
			Date:        core.ParseDate(r.Date),
			Description: r.Description,
			Tags:        r.Tags,
			CreatedAt:   core.ParseTimestamp(r.CreatedAt),
		}
		if t.Currency == "" {
			t.Currency = defaultCurrency
		}
		if err := t.Validate(); err != nil {
			dropped++
			continue
		}
		ds.Transactions = append(ds.Transactions, t)
	}

	if dropped > 0 {
		slog.Warn("dropped malformed transaction rows", "dropped", dropped, "kept", len(ds.Transactions))
	}
	return ds
}

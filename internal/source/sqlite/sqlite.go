// Package sqlite reads the expenses store from a local database file written
// by an external process (typically the bot that records transactions).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	_ "modernc.org/sqlite"

	"spendlive/internal/refresh"
	"spendlive/internal/source"
)

// Source reads all transactions from a sqlite file. Each fetch opens its own
// connection so a concurrent writer process is never blocked for longer than
// one query; WAL mode lets the read proceed alongside writes.
type Source struct {
	path string
}

var _ source.Source = (*Source)(nil)

// New returns a source for the given database file path. The file may not
// exist yet; fetches against a missing file yield an empty result.
func New(path string) *Source {
	return &Source{path: path}
}

// FetchAll reads every transaction row, most recent id first.
func (s *Source) FetchAll(ctx context.Context) ([]source.Row, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		// Don't let the driver create an empty database here; absence just
		// means the writer has not produced data yet.
		slog.WarnContext(ctx, "database file not found", "path", s.path)
		return nil, nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", source.ErrConnection, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("%w: set WAL journal mode: %v", source.ErrConnection, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		return nil, fmt.Errorf("%w: set busy timeout: %v", source.ErrConnection, err)
	}

	rows, err := db.QueryContext(ctx, "SELECT "+source.SelectColumns+" FROM transactions ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("%w: select transactions: %v", source.ErrQuery, err)
	}

	collected, err := source.CollectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrQuery, err)
	}
	return collected, nil
}

// Fingerprint is the file's last-modified time. A missing file reports the
// zero sentinel so the first write after creation is picked up as a change.
func (s *Source) Fingerprint() refresh.Fingerprint {
	info, err := os.Stat(s.path)
	if err != nil {
		return refresh.Fingerprint("mtime:0")
	}
	return refresh.Fingerprint("mtime:" + strconv.FormatInt(info.ModTime().UnixNano(), 10))
}

// Diagnostics reports file-level facts for the dashboard diagnostics panel.
func (s *Source) Diagnostics() source.Diagnostics {
	d := source.Diagnostics{Backend: "sqlite", Path: s.path}
	info, err := os.Stat(s.path)
	if err != nil {
		return d
	}
	d.Exists = true
	d.SizeBytes = info.Size()
	d.ModTime = info.ModTime()
	return d
}

// Close is a no-op; connections are scoped to each fetch.
func (s *Source) Close() error {
	return nil
}

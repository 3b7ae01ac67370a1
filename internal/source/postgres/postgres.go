// Package postgres reads the expenses store from a networked PostgreSQL
// database when the dashboard runs away from the writer's filesystem.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"spendlive/internal/refresh"
	"spendlive/internal/source"
)

// Config carries the connection parameters, usually from PG* environment
// variables.
type Config struct {
	Host           string
	Port           int
	Database       string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
	StalenessTTL   time.Duration
}

// Source fetches all transactions over the network. There is no reliable
// remote change signal, so staleness is bounded by a wall-clock time bucket
// instead of a real fingerprint.
type Source struct {
	cfg      Config
	detector refresh.Detector
}

var _ source.Source = (*Source)(nil)

// New builds a postgres-backed source.
func New(cfg Config) *Source {
	if cfg.Port == 0 {
		cfg.Port = 5432
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "require"
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.StalenessTTL <= 0 {
		cfg.StalenessTTL = 5 * time.Second
	}
	return &Source{cfg: cfg, detector: refresh.TimeBucket(cfg.StalenessTTL)}
}

// FetchAll opens a connection, reads every transaction row most recent date
// first, and closes the connection before returning.
func (s *Source) FetchAll(ctx context.Context) ([]source.Row, error) {
	db, err := sql.Open("postgres", s.connString(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: open postgres connection: %v", source.ErrConnection, err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("%w: ping postgres at %s:%d: %v", source.ErrConnection, s.cfg.Host, s.cfg.Port, err)
	}

	rows, err := db.QueryContext(ctx, "SELECT "+source.SelectColumns+" FROM transactions ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("%w: select transactions: %v", source.ErrQuery, err)
	}

	collected, err := source.CollectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrQuery, err)
	}
	return collected, nil
}

// connString builds a keyword/value DSN. The host is resolved to an explicit
// IPv4 address first: dual-stack hosts whose IPv6 route is broken otherwise
// fail with an ambiguous "cannot assign requested address".
func (s *Source) connString(ctx context.Context) string {
	host := resolveIPv4(ctx, s.cfg.Host)
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s connect_timeout=%d",
		host, s.cfg.Port, s.cfg.Database, s.cfg.User, s.cfg.Password,
		s.cfg.SSLMode, int(s.cfg.ConnectTimeout.Seconds()),
	)
}

func resolveIPv4(ctx context.Context, host string) string {
	if ip := net.ParseIP(host); ip != nil {
		return host
	}
	addrs, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(addrs) == 0 {
		// Resolution failure is not fatal; the driver gets the hostname.
		slog.Debug("ipv4 resolution failed, using hostname", "host", host, "error", err)
		return host
	}
	return addrs[0].String()
}

// Fingerprint delegates to the time-bucket detector; remote data may be up to
// one staleness window out of date.
func (s *Source) Fingerprint() refresh.Fingerprint {
	return s.detector.Fingerprint()
}

// Diagnostics reports connection-level facts for the diagnostics panel.
func (s *Source) Diagnostics() source.Diagnostics {
	return source.Diagnostics{
		Backend: "postgres",
		Host:    net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)),
		Exists:  true,
	}
}

// Close is a no-op; connections are scoped to each fetch.
func (s *Source) Close() error {
	return nil
}

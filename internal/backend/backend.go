// Package backend builds the configured data source. The dashboard itself
// never knows which store it talks to: it only sees a source.Source.
package backend

import (
	"fmt"

	"spendlive/internal/config"
	applog "spendlive/internal/log"
	"spendlive/internal/source"
	pgsource "spendlive/internal/source/postgres"
	sqlitesource "spendlive/internal/source/sqlite"
	"spendlive/internal/storage"
)

// New creates the data source named by cfg.DataBackend.
func New(logger *applog.Logger, cfg *config.Config) (source.Source, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentSource)
	}

	switch cfg.DataBackend {
	case config.BackendSQLite:
		return newSQLite(logger, cfg), nil
	case config.BackendPostgres:
		return newPostgres(logger, cfg), nil
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}

func newSQLite(logger *applog.Logger, cfg *config.Config) source.Source {
	// Make sure a fresh deployment has the transactions table before the
	// external writer shows up. An existing store is left untouched, and a
	// locked or read-only file must not keep the dashboard from starting.
	if err := storage.RunMigrations(cfg.SQLiteDBPath); err != nil {
		logger.Warn("Schema migration failed, continuing read-only", "error", err)
	}

	logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
	return sqlitesource.New(cfg.SQLiteDBPath)
}

func newPostgres(logger *applog.Logger, cfg *config.Config) source.Source {
	src := pgsource.New(pgsource.Config{
		Host:           cfg.PGHost,
		Port:           cfg.PGPort,
		Database:       cfg.PGDatabase,
		User:           cfg.PGUser,
		Password:       cfg.PGPassword,
		SSLMode:        cfg.PGSSLMode,
		ConnectTimeout: cfg.PGConnectTimeout,
		StalenessTTL:   cfg.StalenessTTL,
	})

	logger.Info("Initialized postgres backend",
		"host", cfg.PGHost,
		"database", cfg.PGDatabase,
		"staleness_ttl", cfg.StalenessTTL)
	return src
}

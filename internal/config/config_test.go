package config

import (
	"strings"
	"testing"
	"time"
)

func baseSQLiteConfig() Config {
	return Config{
		Port:             "8081",
		DataBackend:      "sqlite",
		SQLiteDBPath:     "./test.db",
		PGConnectTimeout: 10 * time.Second,
		StalenessTTL:     5 * time.Second,
		DefaultCurrency:  "EUR",
		ExportColumns:    []string{"date", "category", "amount", "description"},
		RawPreviewRows:   10,
	}
}

func basePostgresConfig() Config {
	cfg := baseSQLiteConfig()
	cfg.DataBackend = "postgres"
	cfg.PGHost = "db.example.com"
	cfg.PGPort = 5432
	cfg.PGDatabase = "expenses"
	cfg.PGUser = "reader"
	cfg.PGPassword = "secret"
	cfg.PGSSLMode = "require"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) {},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "mysql" },
			wantErr:     true,
			errorString: "invalid data backend 'mysql': must be one of [sqlite postgres]",
		},
		{
			name:        "sqlite backend missing database path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLITE_DB_PATH cannot be empty",
		},
		{
			name:        "staleness TTL too small",
			mutate:      func(c *Config) { c.StalenessTTL = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name:        "export columns cannot be empty",
			mutate:      func(c *Config) { c.ExportColumns = nil },
			wantErr:     true,
			errorString: "export columns cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseSQLiteConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %q, want substring %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidatePostgres(t *testing.T) {
	t.Run("valid postgres config", func(t *testing.T) {
		cfg := basePostgresConfig()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() unexpected error: %v", err)
		}
	})

	t.Run("missing connection parameters lists every variable", func(t *testing.T) {
		cfg := basePostgresConfig()
		cfg.PGHost = ""
		cfg.PGPassword = ""

		err := cfg.Validate()
		if err == nil {
			t.Fatal("Validate() expected error, got nil")
		}
		for _, want := range []string{"PGHOST", "PGPASSWORD", ".env"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Validate() error = %q, want substring %q", err, want)
			}
		}
		if strings.Contains(err.Error(), "PGUSER") {
			t.Errorf("Validate() error mentions PGUSER which is set: %q", err)
		}
	})

	t.Run("invalid sslmode", func(t *testing.T) {
		cfg := basePostgresConfig()
		cfg.PGSSLMode = "yes"

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "invalid PGSSLMODE") {
			t.Errorf("Validate() = %v, want PGSSLMODE error", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DATA_BACKEND", "STALENESS_TTL", "RAW_PREVIEW_ROWS", "EXPORT_COLUMNS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.DataBackend != BackendSQLite {
		t.Errorf("default backend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.StalenessTTL != 5*time.Second {
		t.Errorf("default staleness TTL = %v, want 5s", cfg.StalenessTTL)
	}
	if cfg.RawPreviewRows != 10 {
		t.Errorf("default raw preview rows = %d, want 10", cfg.RawPreviewRows)
	}
	if len(cfg.ExportColumns) != 4 || cfg.ExportColumns[0] != "date" {
		t.Errorf("default export columns = %v", cfg.ExportColumns)
	}
}

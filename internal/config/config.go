package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backends the dashboard can read from.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	// HTTP server
	Port string

	// Backend selection
	DataBackend string

	// Embedded sqlite store
	SQLiteDBPath string

	// Networked postgres store
	PGHost           string
	PGPort           int
	PGDatabase       string
	PGUser           string
	PGPassword       string
	PGSSLMode        string
	PGConnectTimeout time.Duration

	// StalenessTTL bounds how out of date a remote-backed read may be; it is
	// the time-bucket width of the postgres change detector.
	StalenessTTL time.Duration

	// Dashboard behavior
	DefaultCurrency string
	ExportColumns   []string
	RawPreviewRows  int
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8081"),
		DataBackend: getEnv("DATA_BACKEND", BackendSQLite),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/expenses.db"),

		PGHost:           getEnv("PGHOST", ""),
		PGPort:           getEnvInt("PGPORT", 5432),
		PGDatabase:       getEnv("PGDATABASE", ""),
		PGUser:           getEnv("PGUSER", ""),
		PGPassword:       getEnv("PGPASSWORD", ""),
		PGSSLMode:        getEnv("PGSSLMODE", "require"),
		PGConnectTimeout: getEnvDuration("PGCONNECT_TIMEOUT", 10*time.Second),

		StalenessTTL: getEnvDuration("STALENESS_TTL", 5*time.Second),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "EUR"),
		ExportColumns:   getEnvList("EXPORT_COLUMNS", []string{"date", "category", "amount", "description"}),
		RawPreviewRows:  getEnvInt("RAW_PREVIEW_ROWS", 10),
	}

	return cfg
}

// requiredPGVars are the connection parameters the postgres backend cannot
// run without, in the order they are reported missing.
var requiredPGVars = []struct {
	name  string
	value func(*Config) string
}{
	{"PGHOST", func(c *Config) string { return c.PGHost }},
	{"PGDATABASE", func(c *Config) string { return c.PGDatabase }},
	{"PGUSER", func(c *Config) string { return c.PGUser }},
	{"PGPASSWORD", func(c *Config) string { return c.PGPassword }},
}

// Validate checks the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLITE_DB_PATH cannot be empty when using the sqlite backend")
		}
	case BackendPostgres:
		var missing []string
		for _, v := range requiredPGVars {
			if v.value(c) == "" {
				missing = append(missing, v.name)
			}
		}
		if len(missing) > 0 {
			errors = append(errors, fmt.Sprintf(
				"missing required connection parameters: %s. Set them as environment variables or create a .env file",
				strings.Join(missing, ", ")))
		}
		if c.PGPort < 1 || c.PGPort > 65535 {
			errors = append(errors, fmt.Sprintf("invalid PGPORT %d: must be between 1 and 65535", c.PGPort))
		}
		switch c.PGSSLMode {
		case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
		default:
			errors = append(errors, fmt.Sprintf("invalid PGSSLMODE '%s'", c.PGSSLMode))
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]",
			c.DataBackend, BackendSQLite, BackendPostgres))
	}

	if c.PGConnectTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid connect timeout %v: must be at least 1 second", c.PGConnectTimeout))
	}
	if c.StalenessTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid staleness TTL %v: must be at least 1 second", c.StalenessTTL))
	} else if c.StalenessTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid staleness TTL %v: must be at most 1 hour", c.StalenessTTL))
	}

	if c.RawPreviewRows < 1 {
		errors = append(errors, fmt.Sprintf("invalid raw preview rows %d: must be at least 1", c.RawPreviewRows))
	}
	if len(c.ExportColumns) == 0 {
		errors = append(errors, "export columns cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Bare numbers are treated as seconds, matching libpq's
		// connect_timeout convention.
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"bills/internal/backend"
	applog "bills/internal/log"
	"bills/internal/store/sqlite"
)

type Config struct {
	// Backend selection
	Backend   string
	SQLiteDSN string

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Backend:   getEnv("BILLS_BACKEND", string(backend.MemoryBackend)),
		SQLiteDSN: getEnv("BILLS_SQLITE_DSN", sqlite.DefaultDSN),

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", applog.FormatTint),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !backend.BackendType(c.Backend).IsValid() {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, backend.ValidTypes()))
	}

	if c.Backend == string(backend.SQLiteBackend) {
		if c.SQLiteDSN == "" {
			errors = append(errors, "SQLite DSN cannot be empty when using sqlite backend")
		} else if !sqlite.IsMemoryDSN(c.SQLiteDSN) {
			errors = append(errors, fmt.Sprintf("invalid SQLite DSN '%s': must contain mode=memory and cache=shared", c.SQLiteDSN))
		}
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	switch c.LogFormat {
	case applog.FormatTint, applog.FormatText, applog.FormatJSON:
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [tint text json]", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c *Config) Level() slog.Level {
	level, err := applog.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// BackendConfig converts the settings the backend factory needs.
func (c *Config) BackendConfig() backend.Config {
	return backend.Config{
		Type:      backend.BackendType(c.Backend),
		SQLiteDSN: c.SQLiteDSN,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package cli provides the startup and shutdown steps of cmd/bills.
package cli

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bills/internal/backend"
	"bills/internal/config"
	applog "bills/internal/log"
	"bills/internal/metrics"
)

// NewSessionID returns the id that tags every record of one run.
func NewSessionID() string {
	return uuid.NewString()
}

// SetupLogger builds a logger tagged with sessionID and installs it as the
// slog default.
func SetupLogger(cfg applog.Config, sessionID string) *applog.Logger {
	logger := applog.New(cfg).With(applog.FieldSessionID, sessionID)
	applog.SetDefault(logger)
	return logger
}

// LoggerConfig derives logger settings from the application config.
func LoggerConfig(cfg *config.Config) applog.Config {
	lc := applog.DefaultConfig()
	lc.Level = cfg.Level()
	lc.Format = cfg.LogFormat
	return lc
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.ErrorTyped(context.Background(), applog.ErrorTypeConfiguration, "Configuration validation failed", err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend creates the configured store.
// Returns the backend or exits the process on failure.
func InitBackend(ctx context.Context, logger *applog.Logger, cfg *config.Config) *backend.BackendResult {
	res, err := backend.NewFactory(logger).CreateBackend(ctx, cfg.BackendConfig())
	if err != nil {
		logger.ErrorTyped(ctx, applog.ErrorTypeConfiguration, "Failed to initialize backend", err, applog.FieldBackend, cfg.Backend)
		os.Exit(1)
	}
	return res
}

// LogSessionSummary writes one record per operation/outcome counted during
// the run.
func LogSessionSummary(ctx context.Context, logger *applog.Logger, m *metrics.Metrics) {
	counts, err := m.Snapshot()
	if err != nil {
		logger.WarnContext(ctx, "Failed to gather metrics", applog.FieldError, err)
		return
	}
	for _, oc := range counts {
		logger.InfoContext(ctx, "Session operations",
			applog.FieldOperation, oc.Operation,
			applog.FieldOutcome, oc.Outcome,
			applog.FieldCount, int(oc.Count))
	}
}

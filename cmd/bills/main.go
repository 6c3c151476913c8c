package main

import (
	"context"
	"os"

	"bills/internal/cli"
	"bills/internal/console"
	applog "bills/internal/log"
	"bills/internal/metrics"
	"bills/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	ctx := context.Background()
	sessionID := cli.NewSessionID()
	bootstrap := cli.SetupLogger(applog.DefaultConfig(), sessionID)
	cfg := cli.LoadAndValidateConfig(bootstrap)
	logger := cli.SetupLogger(cli.LoggerConfig(cfg), sessionID)

	res := cli.InitBackend(ctx, logger, cfg)
	defer func() {
		if err := res.Close(); err != nil {
			logger.ErrorTyped(ctx, applog.ErrorTypeInternal, "Backend cleanup failed", err,
				applog.FieldOperation, applog.OpShutdown)
		}
	}()

	m := metrics.New()
	svc := services.NewBillService(res.Store, m, logger)
	ctrl := console.NewController(os.Stdin, os.Stdout, svc, logger)

	logger.InfoContext(ctx, "Bill manager started",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, cfg.Backend)
	err := ctrl.Run(ctx)
	cli.LogSessionSummary(ctx, logger, m)
	if err != nil {
		logger.ErrorTyped(ctx, applog.ErrorTypeInput, "Bill manager stopped", err,
			applog.FieldOperation, applog.OpShutdown)
		return 1
	}
	logger.InfoContext(ctx, "Bill manager stopped", applog.FieldOperation, applog.OpShutdown)
	return 0
}

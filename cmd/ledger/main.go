// Package main runs the seat ledger as a batch job: load the flight catalog,
// replay the transaction file and write the settlement report.
//
// Usage:
//
//	ledger [catalog] [transactions] [output]
//
// Positional arguments override LEDGER_CATALOG_PATH, LEDGER_TRANSACTIONS_PATH
// and LEDGER_OUTPUT_PATH. An empty argument keeps the configured value.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/flight-ledger/seat-inventory-ledger/internal/app"
	"github.com/flight-ledger/seat-inventory-ledger/internal/config"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
)

func main() {
	cfg := config.MustLoad().WithPaths(os.Args[1:]...)

	app.SetupGlobalLogger(cfg, os.Stderr)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("Ledger run failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.NewString()
	appLog := app.NewLogger(cfg, "seat-ledger").WithRunID(runID)

	appLog.Info().
		Str("catalog", cfg.Ledger.CatalogPath).
		Str("transactions", cfg.Ledger.TransactionsPath).
		Str("output", cfg.Ledger.OutputPath).
		Str("format", cfg.Ledger.OutputFormat).
		Bool("strict", cfg.Ledger.Strict).
		Msg("Starting ledger run")

	result, err := app.RunBatch(ctx, cfg.Ledger, app.Options{
		RunID:   runID,
		Logger:  appLog,
		Metrics: metrics.New(prometheus.NewRegistry(), "seat_ledger"),
	})
	if err != nil {
		return err
	}

	appLog.Info().
		Int("processed", result.Stats.Processed).
		Int("applied", result.Stats.Applied).
		Int("dropped", result.Stats.Dropped).
		Int("malformed", result.Stats.Malformed).
		Int("seats_sold", result.Report.TotalSeatsSold).
		Int64("revenue", result.Report.TotalRevenue).
		Msg("Settlement report written")

	return nil
}

// Package app wires the catalog, transaction and report adapters to the
// reservation engine. Both commands start here.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/catalog"
	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/report"
	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/transaction"
	"github.com/flight-ledger/seat-inventory-ledger/internal/config"
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/logger"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/timeutil"
	"github.com/flight-ledger/seat-inventory-ledger/internal/usecase"
)

// Options carries the collaborators shared by every run.
// Zero values fall back to the engine defaults.
type Options struct {
	RunID      string
	Logger     *logger.Logger
	Metrics    *metrics.Metrics
	Clock      timeutil.Clock
	Randomizer domain.SeatRandomizer
}

// NewLogger builds the service logger from the logging section of cfg.
func NewLogger(cfg *config.Config, service string) *logger.Logger {
	return logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  service,
	})
}

// SetupGlobalLogger points the global zerolog logger at out and applies the
// configured level and format. Unknown levels mean info.
func SetupGlobalLogger(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = log.Output(out)

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || cfg.Logging.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// NewEngine loads the catalog at cfg.CatalogPath and builds an engine over it.
func NewEngine(cfg config.LedgerConfig, opts Options) (usecase.ReservationEngine, error) {
	records, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	rng := opts.Randomizer
	if rng == nil {
		rng = usecase.NewSeatRandomizer(cfg.SeatSeed)
	}

	return usecase.NewReservationEngine(records, &usecase.Config{
		Strict:     cfg.Strict,
		Randomizer: rng,
		Clock:      opts.Clock,
		Logger:     opts.Logger,
		Metrics:    opts.Metrics,
		RunID:      opts.RunID,
	})
}

// ReplayFile applies every transaction in the file at path to engine.
func ReplayFile(ctx context.Context, engine usecase.ReservationEngine, path string) (usecase.ReplayStats, error) {
	src, err := transaction.Open(path)
	if err != nil {
		return usecase.ReplayStats{}, err
	}
	defer src.Close()

	return engine.Replay(ctx, src)
}

// Result is the outcome of a batch run.
type Result struct {
	Report domain.SettlementReport
	Stats  usecase.ReplayStats
}

// RunBatch loads the catalog, replays the transactions and writes the
// settlement report to cfg.OutputPath. Nothing is written if any step fails.
func RunBatch(ctx context.Context, cfg config.LedgerConfig, opts Options) (Result, error) {
	format, err := report.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return Result{}, err
	}

	engine, err := NewEngine(cfg, opts)
	if err != nil {
		return Result{}, fmt.Errorf("load catalog: %w", err)
	}

	stats, err := ReplayFile(ctx, engine, cfg.TransactionsPath)
	if err != nil {
		return Result{Stats: stats}, fmt.Errorf("replay transactions: %w", err)
	}

	settlement := engine.Report()
	if err := report.WriteFile(cfg.OutputPath, settlement, format); err != nil {
		return Result{Report: settlement, Stats: stats}, err
	}

	return Result{Report: settlement, Stats: stats}, nil
}

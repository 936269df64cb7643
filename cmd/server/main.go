// Package main is the entry point for the seat ledger HTTP service.
//
//	@title						Seat Inventory Ledger API
//	@version					1.0.0
//	@description				Airline seat inventory ledger: books passengers on the cheapest open flight of a route, reprices flights, cancels reservations and reports seats sold and revenue.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-ledger/seat-inventory-ledger/docs"

	// Application layers
	ledgerhttp "github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http"
	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http/middleware"
	"github.com/flight-ledger/seat-inventory-ledger/internal/app"
	"github.com/flight-ledger/seat-inventory-ledger/internal/config"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
	"github.com/flight-ledger/seat-inventory-ledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	app.SetupGlobalLogger(cfg, os.Stdout)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	runID := uuid.NewString()
	appLog := app.NewLogger(cfg, "seat-ledger").WithRunID(runID)
	m := metrics.New(prometheus.DefaultRegisterer, "seat_ledger")

	engine, err := setupEngine(cfg, app.Options{RunID: runID, Logger: appLog, Metrics: m})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, appLog.Logger, m)

	// Setup routes
	ledgerhttp.RegisterRoutes(e, ledgerhttp.NewLedgerHandler(engine).WithLogger(appLog))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cfg)
}

// setupEngine loads the catalog and, when the transactions file exists,
// replays it so the service starts from the batch state.
func setupEngine(cfg *config.Config, opts app.Options) (usecase.ReservationEngine, error) {
	engine, err := app.NewEngine(cfg.Ledger, opts)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.Ledger.TransactionsPath); errors.Is(err, os.ErrNotExist) {
		log.Info().Str("path", cfg.Ledger.TransactionsPath).Msg("No transactions file, starting from catalog")
		return engine, nil
	}

	stats, err := app.ReplayFile(context.Background(), engine, cfg.Ledger.TransactionsPath)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("processed", stats.Processed).
		Int("applied", stats.Applied).
		Int("dropped", stats.Dropped).
		Msg("Transactions replayed")

	return engine, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

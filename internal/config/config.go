// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Ledger  LedgerConfig
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
}

// LedgerConfig holds the batch inputs and engine behaviour.
type LedgerConfig struct {
	CatalogPath      string `env:"LEDGER_CATALOG_PATH" envDefault:"in/inputfile1.txt"`
	TransactionsPath string `env:"LEDGER_TRANSACTIONS_PATH" envDefault:"in/inputfile2.txt"`
	OutputPath       string `env:"LEDGER_OUTPUT_PATH" envDefault:"out/output.txt"`
	OutputFormat     string `env:"LEDGER_OUTPUT_FORMAT" envDefault:"text"`

	// Strict makes unresolvable or malformed transactions fail the run
	Strict bool `env:"LEDGER_STRICT" envDefault:"false"`

	// SeatSeed seeds seat assignment; 0 picks a random seed per run
	SeatSeed uint64 `env:"LEDGER_SEAT_SEED" envDefault:"0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad is Load for main: it panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate reports every invalid setting at once.
func validate(cfg *Config) error {
	var errs []error

	for name, path := range map[string]string{
		"LEDGER_CATALOG_PATH":      cfg.Ledger.CatalogPath,
		"LEDGER_TRANSACTIONS_PATH": cfg.Ledger.TransactionsPath,
		"LEDGER_OUTPUT_PATH":       cfg.Ledger.OutputPath,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}

	errs = append(errs,
		oneOf("LEDGER_OUTPUT_FORMAT", cfg.Ledger.OutputFormat, "text", "json"),
		oneOf("LOG_LEVEL", cfg.Logging.Level, "debug", "info", "warn", "error"),
		oneOf("LOG_FORMAT", cfg.Logging.Format, "json", "console"),
		oneOf("APP_ENV", cfg.App.Env, "development", "staging", "production"),
		positive("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout),
		positive("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout),
		positive("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout),
	)

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port))
	}

	return errors.Join(errs...)
}

func oneOf(name, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", name, strings.Join(allowed, ", "), value)
}

func positive(name string, d time.Duration) error {
	if d > 0 {
		return nil
	}
	return fmt.Errorf("%s must be positive, got %s", name, d)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// WithPaths returns a copy of c with non-empty arguments replacing the
// catalog, transactions and output paths, in that order.
func (c *Config) WithPaths(args ...string) *Config {
	out := *c
	targets := []*string{&out.Ledger.CatalogPath, &out.Ledger.TransactionsPath, &out.Ledger.OutputPath}
	for i, arg := range args {
		if i >= len(targets) {
			break
		}
		if arg != "" {
			*targets[i] = arg
		}
	}
	return &out
}

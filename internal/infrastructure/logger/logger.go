// Package logger provides structured logging using zerolog.
// Output goes to stderr as JSON or as console text.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum level (debug, info, warn, error); unknown values mean info
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is json or console
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds file:line to every entry
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	ServiceName string `env:"SERVICE_NAME" envDefault:"seat-ledger"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "seat-ledger",
	}
}

// Logger wraps zerolog.Logger with ledger-specific context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stderr, leaving stdout free for reports.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRunID tags every entry with the batch run ID.
func (l *Logger) WithRunID(runID string) *Logger {
	return l.with("run_id", runID)
}

// WithRequestID tags every entry with the HTTP request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.with("request_id", requestID)
}

// WithTransaction describes one ledger transaction. Empty fields and a zero
// line are left out, so a ChangePrice entry carries no passenger or route.
func (l *Logger) WithTransaction(kind, passenger, route, flightNumber string, line int) *Logger {
	ctx := l.With().Str("kind", kind)
	if passenger != "" {
		ctx = ctx.Str("passenger", passenger)
	}
	if route != "" {
		ctx = ctx.Str("route", route)
	}
	if flightNumber != "" {
		ctx = ctx.Str("flight", flightNumber)
	}
	if line > 0 {
		ctx = ctx.Int("line", line)
	}
	return &Logger{Logger: ctx.Logger()}
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

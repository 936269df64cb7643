package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger
//  3. Metrics, skipped when m is nil
//  4. Recover, innermost, so the logger and metrics see the 500
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics) {
	SetupWithConfig(e, log, m, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) {
	e.Use(Chain(log, m, recoveryConfig)...)
}

// Chain returns the middleware stack as a slice for use with route groups.
func Chain(log zerolog.Logger, m *metrics.Metrics, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
	}
	if m != nil {
		chain = append(chain, Metrics(m))
	}
	return append(chain, RecoverWithConfig(log, recoveryConfig))
}

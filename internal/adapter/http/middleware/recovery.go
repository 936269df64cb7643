package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http/response"
)

// RecoveryConfig tunes the panic recovery middleware.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig logs stack traces.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover is RecoverWithConfig with the default configuration.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig turns a handler panic into a logged 500 with a generic body.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", panicMessage(r))
				if !config.DisablePrintStack {
					event = event.Bytes("stack", debug.Stack())
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					_ = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}

package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
)

// Metrics returns middleware that records request latency by route pattern.
// Requests that match no route are labelled "unmatched".
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

			return nil
		}
	}
}

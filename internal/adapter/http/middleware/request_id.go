// Package middleware provides the echo middleware shared by every ledger route:
// request IDs, access logs, latency metrics and panic recovery.
package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

type requestIDCtxKey struct{}

// RequestID reuses an incoming X-Request-ID or issues a UUID. The ID is echoed
// in the response and stored on the echo context and on the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDCtxKey{}, id)))

			return next(c)
		}
	}
}

// GetRequestID returns the ID stored by RequestID, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// RequestIDFromContext returns the ID stored by RequestID on ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

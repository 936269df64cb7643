package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all ledger API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *LedgerHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *LedgerHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)
	api.GET("/report", h.Report)
	api.POST("/transactions", h.SubmitTransaction)
	api.GET("/flights/:number", h.Flight)
	api.GET("/routes/:origin/:destination/flights", h.RouteFlights)
}

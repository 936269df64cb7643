// Package http provides the HTTP handler layer for the seat ledger API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http/middleware"
	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http/response"
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/logger"
	"github.com/flight-ledger/seat-inventory-ledger/internal/usecase"
)

// LedgerHandler handles HTTP requests for the ledger endpoints.
type LedgerHandler struct {
	engine usecase.ReservationEngine
	log    *logger.Logger
}

// NewLedgerHandler creates a new LedgerHandler over the given engine.
func NewLedgerHandler(engine usecase.ReservationEngine) *LedgerHandler {
	return &LedgerHandler{
		engine: engine,
		log:    logger.Nop(),
	}
}

// WithLogger sets the logger used for submitted transactions.
func (h *LedgerHandler) WithLogger(log *logger.Logger) *LedgerHandler {
	if log != nil {
		h.log = log
	}
	return h
}

// Report handles GET /api/v1/report
//
// @Summary Settlement report
// @Description Per-flight summaries in catalog order plus system totals
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.SettlementReport
// @Router /api/v1/report [get]
func (h *LedgerHandler) Report(c echo.Context) error {
	return response.OK(c, h.engine.Report())
}

// Flight handles GET /api/v1/flights/:number
//
// @Summary Flight summary
// @Description Seats, revenue and reservations of one flight
// @Tags flights
// @Produce json
// @Param number path string true "Flight number" example(K792)
// @Success 200 {object} domain.FlightSummary
// @Failure 404 {object} response.ErrorDetail "Unknown flight number"
// @Router /api/v1/flights/{number} [get]
func (h *LedgerHandler) Flight(c echo.Context) error {
	number := c.Param("number")

	summary, ok := h.engine.Flight(number)
	if !ok {
		return response.NotFound(c, fmt.Sprintf("flight %s not found", number))
	}
	return response.OK(c, summary)
}

// RouteFlights handles GET /api/v1/routes/:origin/:destination/flights
//
// @Summary Flights on a route
// @Description Flights between two airports, cheapest first
// @Tags flights
// @Produce json
// @Param origin path string true "Origin airport code" example(CHI)
// @Param destination path string true "Destination airport code" example(DFW)
// @Success 200 {object} RouteFlightsResponse
// @Failure 400 {object} response.ErrorDetail "Invalid airport code"
// @Failure 404 {object} response.ErrorDetail "No flights on the route"
// @Router /api/v1/routes/{origin}/{destination}/flights [get]
func (h *LedgerHandler) RouteFlights(c echo.Context) error {
	origin, destination := c.Param("origin"), c.Param("destination")

	flights, err := h.engine.RouteFlights(origin, destination)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, RouteFlightsResponse{
		Origin:      origin,
		Destination: destination,
		Flights:     flights,
	})
}

// SubmitTransaction handles POST /api/v1/transactions
//
// @Summary Apply a transaction
// @Description Books, reprices or cancels. A transaction the ledger cannot resolve
// @Description is reported with applied=false, or rejected with 422 in strict mode.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body SubmitTransactionRequest true "Transaction"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Rejected in strict mode"
// @Router /api/v1/transactions [post]
func (h *LedgerHandler) SubmitTransaction(c echo.Context) error {
	var req SubmitTransactionRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	if err := c.Request().Context().Err(); err != nil {
		return h.handleError(c, err)
	}

	tx := ToDomainTransaction(&req)
	log := h.log.WithRequestID(middleware.GetRequestID(c))

	out, err := h.engine.Apply(tx)
	if err != nil {
		if domain.IsDropReason(err) {
			log.Warn().Err(err).Str("kind", string(tx.Kind)).Msg("Transaction rejected")
			return response.TransactionRejected(c, err.Error())
		}
		return h.handleError(c, err)
	}

	event := log.Info()
	if !out.Applied {
		event = log.Debug().AnErr("reason", out.Reason)
	}
	event.
		Str("kind", string(out.Kind)).
		Bool("applied", out.Applied).
		Str("flight", out.FlightNumber).
		Msg("Transaction submitted")

	return response.OK(c, ToTransactionResponse(out))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *LedgerHandler) Health(c echo.Context) error {
	return response.Health(c, h.engine.FlightCount())
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *LedgerHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *LedgerHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAirportCode):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrRouteNotFound), errors.Is(err, domain.ErrFlightNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}

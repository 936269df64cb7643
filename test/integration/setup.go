// Package integration provides helpers and integration tests for the seat ledger.
// Integration tests verify that components work together correctly, including
// the file adapters, the reservation engine and the HTTP layer.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http"
	"github.com/flight-ledger/seat-inventory-ledger/internal/adapter/http/middleware"
	"github.com/flight-ledger/seat-inventory-ledger/internal/domain"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/metrics"
	"github.com/flight-ledger/seat-inventory-ledger/internal/infrastructure/timeutil"
	"github.com/flight-ledger/seat-inventory-ledger/internal/usecase"
	"github.com/flight-ledger/seat-inventory-ledger/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.LedgerHandler
	Metrics *metrics.Metrics
}

// NewTestServer creates a new test server over the given engine, with the
// production middleware chain and a private metrics registry.
func NewTestServer(engine usecase.ReservationEngine) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	m := metrics.New(prometheus.NewRegistry(), "test")
	middleware.Setup(e, zerolog.Nop(), m)

	handler := httpAdapter.NewLedgerHandler(engine)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Metrics: m,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Submit posts a transaction.
func (ts *TestServer) Submit(body httpAdapter.SubmitTransactionRequest) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/transactions",
		Body:   body,
	})
}

// Book posts a BookPassenger transaction.
func (ts *TestServer) Book(passenger, origin, destination string) Response {
	return ts.Submit(httpAdapter.SubmitTransactionRequest{
		Kind: "BookPassenger", Passenger: passenger, Origin: origin, Destination: destination,
	})
}

// Cancel posts a CancelPassenger transaction.
func (ts *TestServer) Cancel(passenger, origin, destination string) Response {
	return ts.Submit(httpAdapter.SubmitTransactionRequest{
		Kind: "CancelPassenger", Passenger: passenger, Origin: origin, Destination: destination,
	})
}

// ChangePrice posts a ChangePrice transaction.
func (ts *TestServer) ChangePrice(flightNumber string, price int) Response {
	return ts.Submit(httpAdapter.SubmitTransactionRequest{
		Kind: "ChangePrice", FlightNumber: flightNumber, NewPrice: testutil.Ptr(price),
	})
}

// Get makes a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Decode unmarshals the response body into out.
func (r *Response) Decode(t *testing.T, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, out), "body: %s", r.Body)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CreateEngine builds an engine with deterministic seats and a fixed clock.
func CreateEngine(t *testing.T, records []domain.FlightRecord, strict bool) usecase.ReservationEngine {
	t.Helper()

	engine, err := usecase.NewReservationEngine(records, &usecase.Config{
		Strict:     strict,
		Randomizer: testutil.SequentialSeats{},
		Clock:      timeutil.NewMockClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)),
		RunID:      "integration",
	})
	require.NoError(t, err)
	return engine
}

// SampleCatalog returns the three-flight catalog used across integration tests.
func SampleCatalog() []domain.FlightRecord {
	return []domain.FlightRecord{
		{Number: "K792", Seats: 26, Price: 130, Origin: "CHI", Destination: "DFW", Line: 1},
		{Number: "A792", Seats: 56, Price: 140, Origin: "CHI", Destination: "DFW", Line: 2},
		{Number: "A124", Seats: 54, Price: 150, Origin: "LAS", Destination: "LAX", Line: 3},
	}
}

package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// decodeError parses an ErrorDetail body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c, 3)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, 3, result.Flights)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid request body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation error with message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "Custom validation message") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "Custom validation message",
		},
		{
			name:        "not found",
			write:       func(c echo.Context) error { return NotFound(c, "flight K792 not found") },
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: "flight K792 not found",
		},
		{
			name:        "transaction rejected",
			write:       func(c echo.Context) error { return TransactionRejected(c, "route not found: LAS-LAX") },
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    CodeTransactionRejected,
			wantMessage: "route not found: LAS-LAX",
		},
		{
			name:        "request cancelled",
			write:       RequestCancelled,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgRequestCancelled,
		},
		{
			name:        "internal server error",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"origin":    "origin must be a 3-letter airport code",
		"passenger": "passenger is required",
	}
	err := ValidationError(c, details)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestOK(t *testing.T) {
	payload := struct {
		FlightNumber string `json:"flightNumber"`
		Sold         int    `json:"soldSeats"`
	}{"K792", 3}

	_, c, rec := setupEcho()
	require.NoError(t, OK(c, payload))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flightNumber":"K792","soldSeats":3}`, rec.Body.String())
}

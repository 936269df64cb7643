// Package response builds the JSON bodies of the ledger API, including the
// single error shape every endpoint returns.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	Code    string `json:"code" example:"not_found"`
	Message string `json:"message" example:"flight Z999 not found"`

	// Details maps field names to problems, for validation errors only
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeValidationError     = "validation_error"
	CodeNotFound            = "not_found"
	CodeTransactionRejected = "transaction_rejected"
	CodeTimeout             = "timeout"
	CodeInternalError       = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes data as a 200 JSON response.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

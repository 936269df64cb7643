package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message, Details: details})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 for a body that could not be decoded.
func InvalidRequestBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 listing the offending fields.
func ValidationError(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 validation error without field details.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// NotFound writes a 404 for an unknown flight or route.
func NotFound(c echo.Context, message string) error {
	return fail(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// TransactionRejected writes a 422 carrying the drop reason of a transaction
// refused in strict mode.
func TransactionRejected(c echo.Context, reason string) error {
	return fail(c, http.StatusUnprocessableEntity, CodeTransactionRejected, reason, nil)
}

// RequestCancelled writes a 504 for a request whose context ended first.
func RequestCancelled(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 with a generic message.
func InternalServerError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}

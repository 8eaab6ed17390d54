package response

import (
	"net/http"

	deliverycontext "nursehub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error     string `json:"error"`             // Safe, human-readable message
	Code      string `json:"code"`              // Machine-readable error code, e.g. "INVALID_PRODUCT_KEY"
	Details   string `json:"details,omitempty"` // Additional context, 4xx only
	RequestID string `json:"request_id"`
}

// OK writes a 200 JSON body
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Error writes an error body. Details are dropped for 5xx and for authentication or authorization failures.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

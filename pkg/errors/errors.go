package errors

import "fmt"

// HTTPError is an error that maps directly onto an HTTP status code.
// Delivery layers translate domain errors into these in their mapError.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Common HTTP errors shared across delivery layers.
var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrUnauthorized        = NewHTTPError(401, "unauthorized")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrTooManyRequests     = NewHTTPError(429, "too many requests")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
)

package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error carrying the HTTP status and the code sent to the client.
type APIError struct {
	Code    int
	Message string
	cause   error
}

func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Is matches any APIError with the same message code.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return e.Message == t.Message
}

// Wrap returns a copy of e that keeps err as its cause for logging.
func (e *APIError) Wrap(err error) *APIError {
	return &APIError{Code: e.Code, Message: e.Message, cause: err}
}

// Taxonomy errors surfaced by the adapters and page controllers.
var (
	ErrConfiguration = NewAPIError(http.StatusServiceUnavailable, ErrStoreNotConfigured)
	ErrConnection    = NewAPIError(http.StatusBadGateway, ErrStoreUnreachable)
	ErrMetricMissing = NewAPIError(http.StatusNotFound, ErrMetricNotFound)
	ErrUserMissing   = NewAPIError(http.StatusNotFound, ErrUserNotFound)
	ErrDateRange     = NewAPIError(http.StatusBadRequest, ErrInvalidDateRange)
	ErrHorizon       = NewAPIError(http.StatusBadRequest, ErrInvalidHorizon)
	ErrStore         = NewAPIError(http.StatusBadRequest, ErrInvalidStore)
	ErrValidation    = NewAPIError(http.StatusBadRequest, ErrBadRequest)
	ErrTimeout       = NewAPIError(http.StatusGatewayTimeout, ErrRequestTimeout)
	ErrCanceled      = NewAPIError(StatusClientClosedRequest, ErrRequestCanceled)
)

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no approved user exists for a wallet.
	ErrUserNotFound = errors.New("user not found or not approved")
	// ErrRequestNotFound is returned when no pending registration request exists for a wallet.
	ErrRequestNotFound = errors.New("pending request not found")
	// ErrLicenseNotFound is returned when a license number is absent from the PPB registry.
	ErrLicenseNotFound = errors.New("license number not found in PPB registry")
	// ErrWalletExists is returned when a wallet already has a registration request.
	ErrWalletExists = errors.New("wallet address already registered")
	// ErrUnauthorized is returned for missing or invalid admin credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExternalServiceError wraps a failure of the chain or the pinning service. Message is what the client
// sees: the upstream reason, verbatim where one was available.
type ExternalServiceError struct {
	Service string
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return e.Message
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError wraps err from service. An empty message falls back to err's text.
func NewExternalServiceError(service, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ExternalServiceError{Service: service, Message: message, Err: err}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	var externalErr *ExternalServiceError

	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	case errors.Is(err, ErrWalletExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONFLICT")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRequestNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND")
	case errors.Is(err, ErrLicenseNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LICENSE_NOT_FOUND")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.As(err, &externalErr):
		return NewHTTPError(http.StatusInternalServerError, externalErr.Message, "EXTERNAL_SERVICE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/indietrack/artist-dashboard/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest         ErrorCode = "bad_request"
	ErrCodeNotFound           ErrorCode = "not_found"
	ErrCodeValidationFailed   ErrorCode = "validation_failed"
	ErrCodeInvalidTransition  ErrorCode = "invalid_transition"
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
	ErrCodeEmailNotConfirmed  ErrorCode = "email_not_confirmed"
	ErrCodeUserNotFound       ErrorCode = "user_not_found"
	ErrCodeUnauthorized       ErrorCode = "unauthorized"
	ErrCodeForbidden          ErrorCode = "forbidden"
	ErrCodeRateLimited        ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Response is the JSON envelope every error is returned in
type Response struct {
	Error *APIError `json:"error"`
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: message,
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromError maps a service error to an HTTP status and API error.
// Unexpected errors keep their text out of the response; callers log them.
func FromError(err error) (int, *APIError) {
	var ve *domain.ValidationError
	var te *domain.TransitionError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, NewValidationError(ve.Error())
	case errors.As(err, &te):
		return http.StatusBadRequest, &APIError{
			Code:    ErrCodeInvalidTransition,
			Message: "Invalid status transition",
			Details: te.Error(),
		}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, &APIError{Code: ErrCodeInvalidCredentials, Message: "Invalid email or password"}
	case errors.Is(err, domain.ErrEmailNotConfirmed):
		return http.StatusBadRequest, &APIError{Code: ErrCodeEmailNotConfirmed, Message: "Please confirm your email address before logging in"}
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusUnauthorized, NewUnauthorizedError("Authentication required")
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, &APIError{Code: ErrCodeUserNotFound, Message: "No account found for this email"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError("Resource not found")
	case errors.Is(err, domain.ErrPersistence), errors.Is(err, domain.ErrCreationFailed):
		return http.StatusInternalServerError, NewDatabaseError("Failed to access data")
	case errors.Is(err, domain.ErrIdentityProvider):
		return http.StatusInternalServerError, NewServiceError("Authentication service unavailable")
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}

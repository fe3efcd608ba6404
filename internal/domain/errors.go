package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an entity does not exist or is not owned by the caller.
	// Both cases share one error so ownership is never leaked.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized is returned when the session is missing or expired
	ErrNotAuthorized = errors.New("not authorized")

	// ErrCreationFailed is returned when the store rejects a create; the cause is only logged
	ErrCreationFailed = errors.New("creation failed")

	// ErrPersistence is returned for unexpected store failures; the cause is only logged
	ErrPersistence = errors.New("persistence error")

	// ErrInvalidTransition is returned when a release status change violates the transition table
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned when the identity provider rejects an email/password pair
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotConfirmed is returned when logging in before the email address is verified
	ErrEmailNotConfirmed = errors.New("email not confirmed")

	// ErrUserNotFound is returned when no identity exists for an email address
	ErrUserNotFound = errors.New("user not found")

	// ErrIdentityProvider is returned for unexpected identity provider failures
	ErrIdentityProvider = errors.New("identity provider error")
)

// ValidationError reports malformed input for a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransitionError reports a rejected release status change together with the states that are allowed
type TransitionError struct {
	From    ReleaseStatus
	To      ReleaseStatus
	Allowed []ReleaseStatus
	Reason  string
}

func (e *TransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, string(s))
	}
	msg := fmt.Sprintf("cannot move release from %s to %s", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if len(allowed) == 0 {
		return msg + " (no further transitions allowed)"
	}
	return msg + " (allowed: " + strings.Join(allowed, ", ") + ")"
}

// Unwrap makes errors.Is(err, ErrInvalidTransition) hold
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
	ErrServer          = errors.New("server error")
	ErrTransport       = errors.New("network error")
	ErrMockUnavailable = errors.New("no mock available")
	ErrBusy            = errors.New("operation already in progress")
)

// Form fields that can carry a field-scoped error.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// HTTPError is a non-2xx response that maps to none of the classified sentinels.
// Detail carries the server-supplied message, if any.
type HTTPError struct {
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http error: status %d", e.Status)
	}
	return fmt.Sprintf("http error: status %d: %s", e.Status, e.Detail)
}

// StatusError builds the classified error for a non-2xx HTTP status.
// 401, 403, 404 and 5xx map to sentinels; the server detail, when present,
// is kept in the message. Anything else becomes an *HTTPError.
func StatusError(status int, detail string) error {
	var sentinel error
	switch {
	case status == 401:
		sentinel = ErrUnauthorized
	case status == 403:
		sentinel = ErrForbidden
	case status == 404:
		sentinel = ErrNotFound
	case status >= 500:
		sentinel = ErrServer
	default:
		return &HTTPError{Status: status, Detail: detail}
	}
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

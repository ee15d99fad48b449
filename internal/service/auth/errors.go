package auth

import (
	"errors"
	"strings"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// User-facing messages.
const (
	MsgInvalidEmail       = "Please enter a valid email address."
	MsgShortPassword      = "Password must be at least 6 characters long."
	MsgNameRequired       = "Please enter your full name."
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgEmailTaken         = "An account with this email already exists."
	MsgNetwork            = "Network error. Please check your connection and try again."
	MsgLoginFailed        = "Login failed. Please try again."
	MsgRegisterFailed     = "Registration failed. Please try again."
	MsgSessionExpired     = "Session expired. Please login again."
)

// FormError is an error shaped for the auth form. Field is one of
// domain.FieldName, domain.FieldEmail, domain.FieldPassword, or empty for
// form-level errors.
type FormError struct {
	Message string
	Field   string
	Err     error
}

func (e *FormError) Error() string { return e.Message }

func (e *FormError) Unwrap() error { return e.Err }

func fieldError(field, message string) *FormError {
	return &FormError{Message: message, Field: field, Err: domain.NewValidationError(field, message)}
}

// validateCredentials checks the email and password shared by both forms.
func validateCredentials(email, password string) *FormError {
	if !domain.IsValidEmail(email) {
		return fieldError(domain.FieldEmail, MsgInvalidEmail)
	}
	if len(password) < domain.MinPasswordLength {
		return fieldError(domain.FieldPassword, MsgShortPassword)
	}
	return nil
}

func classifyLogin(err error) *FormError {
	switch {
	case errors.Is(err, domain.ErrUnauthorized) || containsAny(err, "invalid credentials", "incorrect"):
		return &FormError{Message: MsgInvalidCredentials, Err: err}
	case errors.Is(err, domain.ErrTransport):
		return &FormError{Message: MsgNetwork, Err: err}
	default:
		return &FormError{Message: MsgLoginFailed, Err: err}
	}
}

func classifyRegister(err error) *FormError {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists) || containsAny(err, "already exists"):
		return &FormError{Message: MsgEmailTaken, Field: domain.FieldEmail, Err: err}
	case errors.Is(err, domain.ErrTransport):
		return &FormError{Message: MsgNetwork, Err: err}
	default:
		return &FormError{Message: MsgRegisterFailed, Err: err}
	}
}

func containsAny(err error, needles ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

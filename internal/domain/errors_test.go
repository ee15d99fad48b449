package domain

import (
	"errors"
	"net/http"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("email", "required")

	if got := err.Error(); got != "validation: email: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "lessonId", Message: "required"},
		{Field: "score", Message: "must be between 0 and 100"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized,
		ErrForbidden, ErrServer, ErrTransport, ErrMockUnavailable, ErrBusy,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		detail string
		want   error
	}{
		{"401", http.StatusUnauthorized, "", ErrUnauthorized},
		{"401 with detail", http.StatusUnauthorized, "Incorrect email or password", ErrUnauthorized},
		{"403", http.StatusForbidden, "", ErrForbidden},
		{"404", http.StatusNotFound, "Movie not found", ErrNotFound},
		{"500", http.StatusInternalServerError, "", ErrServer},
		{"503", http.StatusServiceUnavailable, "", ErrServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := StatusError(tt.status, tt.detail)
			if !errors.Is(err, tt.want) {
				t.Fatalf("StatusError(%d) = %v, want %v", tt.status, err, tt.want)
			}
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				t.Fatalf("classified status %d must not be an *HTTPError", tt.status)
			}
		})
	}
}

func TestStatusError_Generic(t *testing.T) {
	t.Parallel()

	err := StatusError(http.StatusBadRequest, "User with this email already exists")

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", httpErr.Status)
	}
	if got := err.Error(); got != "http error: status 400: User with this email already exists" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&HTTPError{Status: 418}).Error(); got != "http error: status 418" {
		t.Errorf("Error() without detail = %q", got)
	}
}

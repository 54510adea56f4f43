package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("batch_size", "must be non-negative")

	if got := err.Error(); got != "validation: batch_size: must be non-negative" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "batch_size", Message: "must be non-negative"},
		{Field: "pool", Message: "required"},
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

func TestValidationError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("synthesize: %w", NewValidationError("pool", "required"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find *ValidationError")
	}
	if ve.Errors[0].Field != "pool" {
		t.Errorf("field: got %q, want %q", ve.Errors[0].Field, "pool")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Error("validation error must not match ErrNotFound")
	}
}

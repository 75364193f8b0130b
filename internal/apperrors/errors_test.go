package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	cases := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{"no messages", NewValidation(), "validation failed"},
		{"single message", NewValidation("email must be an email"), "email must be an email"},
		{"first of many", NewValidation("name should not be empty", "other"), "name should not be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expected {
				t.Errorf("Error() = %q; want %q", got, tc.expected)
			}
		})
	}
}

func TestAsValidation(t *testing.T) {
	ve := NewValidation("password must be longer than or equal to 7 characters")
	wrapped := fmt.Errorf("register: %w", ve)

	got, ok := AsValidation(wrapped)
	if !ok {
		t.Fatal("expected AsValidation to match wrapped ValidationError")
	}
	if len(got.Messages) != 1 || got.Messages[0] != ve.Messages[0] {
		t.Errorf("unexpected messages: %v", got.Messages)
	}

	if _, ok := AsValidation(errors.New("plain")); ok {
		t.Error("did not expect AsValidation to match a plain error")
	}
}

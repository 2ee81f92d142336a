// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--accuracy"),
			expected: "invalid value 42 for flag --accuracy",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestTuningError(t *testing.T) {
	t.Parallel()
	err := TuningError{Pair: "mul", Bits: 4097, Message: "start too high, decrease it and try again"}
	want := `tuning "mul" failed at 4097 bits: start too high, decrease it and try again`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	var tuningErr TuningError
	if !errors.As(error(err), &tuningErr) {
		t.Error("expected error to be TuningError type")
	}
	if tuningErr.Bits != 4097 {
		t.Errorf("expected Bits 4097, got %d", tuningErr.Bits)
	}
}

func TestGeneratorError(t *testing.T) {
	t.Parallel()
	err := GeneratorError{Bits: 128, Attempts: 100}
	want := "operand generator exhausted after 100 attempts for 128-bit value"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInvocationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("division by zero")
	err := InvocationError{Operation: "divideNewton", Bits: 8192, Cause: cause}

	if !errors.Is(error(err), cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	want := `operation "divideNewton" failed at 8192 bits: division by zero`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "start", Message: "must be at least 1"}
	want := `validation error for "start": must be at least 1`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("wraps non-nil error", func(t *testing.T) {
		t.Parallel()
		base := errors.New("base failure")
		wrapped := WrapError(base, "comparing at %d bits", 4096)
		if wrapped == nil {
			t.Fatal("expected non-nil wrapped error")
		}
		if !errors.Is(wrapped, base) {
			t.Error("expected errors.Is to find the base error")
		}
		want := "comparing at 4096 bits: base failure"
		if wrapped.Error() != want {
			t.Errorf("expected %q, got %q", want, wrapped.Error())
		}
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("expected nil for nil input")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", WrapError(context.Canceled, "probe aborted"), true},
		{"other error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

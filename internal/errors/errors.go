package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTuning   = 2   // Indicates the tuning search could not observe a crossover.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// TuningError reports that the crossover search could not run to completion
// for a given operation pair. The canonical case is a starting size already
// inside the fast-algorithm-favored regime, which makes the slow-favored
// region unobservable.
type TuningError struct {
	// Pair is the name of the operation pair being tuned.
	Pair string
	// Bits is the size at which the search failed.
	Bits int
	// Message explains the failure.
	Message string
}

// Error returns a formatted message describing the tuning failure.
func (e TuningError) Error() string {
	return fmt.Sprintf("tuning %q failed at %d bits: %s", e.Pair, e.Bits, e.Message)
}

// GeneratorError reports that the operand generator exhausted its retry budget
// without producing a value of the requested exact bit length. This indicates
// a broken randomness source or an invalid size request, both fatal.
type GeneratorError struct {
	// Bits is the requested minimal bit length.
	Bits int
	// Attempts is the number of generation attempts made.
	Attempts int
}

// Error returns a formatted message describing the generator failure.
func (e GeneratorError) Error() string {
	return fmt.Sprintf("operand generator exhausted after %d attempts for %d-bit value", e.Attempts, e.Bits)
}

// InvocationError wraps a failure raised by a timed operation itself. The
// measurement run that produced it is aborted; partial intervals discovered
// earlier are reported alongside the error but are not a substitute for a
// clean rerun.
type InvocationError struct {
	// Operation is the name of the operation that failed.
	Operation string
	// Bits is the comparison size at which the invocation failed.
	Bits int
	// Cause is the underlying error returned by the operation.
	Cause error
}

// Error returns a formatted message describing the invocation failure.
func (e InvocationError) Error() string {
	return fmt.Sprintf("operation %q failed at %d bits: %v", e.Operation, e.Bits, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e InvocationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

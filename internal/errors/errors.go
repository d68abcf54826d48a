package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates a deadline was exceeded.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
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

// StepError records which demo step failed and keeps the original cause
// reachable through errors.Is and errors.As.
type StepError struct {
	// Step is the name of the step that failed.
	Step string
	// Cause is the underlying error.
	Cause error
}

// Error returns the step name followed by the cause message.
func (e StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e StepError) Unwrap() error { return e.Cause }

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
// It returns nil if err is nil.
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

// HandleStepError reports a failed run on out and maps the error to an
// exit code. A nil error maps to ExitSuccess and writes nothing.
//
// Parameters:
//   - err: The error returned by the step executor.
//   - out: The writer for the error message (usually stderr).
//
// Returns:
//   - int: The exit code for the process.
func HandleStepError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(out, "Run timed out: %v\n", err)
			return ExitErrorTimeout
		}
		fmt.Fprintf(out, "Run canceled: %v\n", err)
		return ExitErrorCanceled
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "Configuration error: %v\n", err)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "Error: %v\n", err)
	return ExitErrorGeneric
}

package errors

import (
	"errors"
	"fmt"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the wizard completed, or had nothing to do.
	ExitSuccess = 0

	// ExitFailure indicates a fatal precondition failure or unhandled error.
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrHostAppNotFound indicates the desktop application is not installed.
	ErrHostAppNotFound = errors.New("host application not found")

	// ErrToolNotFound indicates a required external tool is missing from PATH.
	ErrToolNotFound = errors.New("required tool not found")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrCancelled indicates the operator declined or aborted a prompt.
	ErrCancelled = errors.New("cancelled")
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewFatal creates an ExitError with ExitFailure code and a suggestion.
func NewFatal(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

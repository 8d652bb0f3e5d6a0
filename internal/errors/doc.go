// Package errors provides error handling conventions for the mcp-setup CLI.
//
// This package defines sentinel errors for common failure conditions and an
// ExitError type carrying the process exit code.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, setuperrors.ErrConfigNotFound) {
//	    // handle missing config
//	}
//
// # Exit Codes
//
// The wizard follows a two-code convention: 0 for success or a graceful
// no-op (nothing selected, operator declined), 1 for any fatal precondition
// failure or unhandled error.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	var exitErr *setuperrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors

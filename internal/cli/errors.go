package cli

import "fmt"

// ExitError represents a command execution failure with a specific exit code.
//
// This error type allows Cobra RunE functions to signal non-zero exit codes
// without calling os.Exit() directly, enabling testable CLI behavior. When a
// command fails, it returns NewExitError(code), which propagates up to
// [RunWithConfig] where [IsExitError] extracts the code for [ExecuteResult].
type ExitError struct {
	// Code is the exit code to return to the shell.
	// Convention: 0 = success, 1 = general error.
	Code int
}

// Error implements the error interface, returning a string in the format
// "exit status N" for consistency with os/exec exit messages.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError checks if an error is an [ExitError] and extracts its exit code.
//
// Returns (code, true) if err is an *ExitError. Returns (0, false) for nil or
// non-ExitError errors, which callers map to a generic exit code 1.
func IsExitError(err error) (int, bool) {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code, true
	}
	return 0, false
}

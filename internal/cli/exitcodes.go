package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O errors, write failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Missing documents or a block index past the last kanban block.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Drag payloads that fail validation.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Boards whose columns exceed their WIP limits.
	ExitValidation = 5
)

// CodedError carries the exit code a command wants the process to end with.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code.
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the exit code for an error returned by a command.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

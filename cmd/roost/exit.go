package main

import (
	"errors"
	"fmt"
)

const (
	exitCodeSuccess      = 0
	exitCodeInputClosed  = 1
	exitCodeOutputFailed = 2
	exitCodeBadConfig    = 3
)

// ExitError carries a process exit code while preserving wrapped error context.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("process failed with exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newExitError(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// exitCode maps err to a process status; errors without a code exit 1.
func exitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

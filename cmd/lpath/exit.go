package main

import "errors"

// Process exit codes.
const (
	exitOK          = 0
	exitInput       = 1
	exitInvalidPath = 2
	exitInterrupted = 3
)

// exitError carries a specific exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// withCode wraps err so that execute exits with code.
func withCode(code int, err error) error {
	if err == nil {
		return nil
	}

	return &exitError{code: code, err: err}
}

// exitCode extracts the exit code of err; untagged errors are input errors.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitInput
}

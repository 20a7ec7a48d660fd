package exitcode

import (
	"errors"
)

const (
	Failure = 1
	Config  = 2
	IO      = 3
	Tool    = 4
)

// Error attaches a process exit code to err. The returned error
// satisfies interface{ ExitCode() int } so that it can be handed
// straight to an exit helper.
func Error(err error, exitCode int) error {
	if err == nil {
		return nil
	}

	if exitCode <= 0 || 125 < exitCode {
		exitCode = Failure
	}

	return &exitCodeError{
		err:      err,
		exitCode: exitCode,
	}
}

type exitCodeError struct {
	err      error
	exitCode int
}

func (e *exitCodeError) Error() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

func (e *exitCodeError) ExitCode() int {
	return e.exitCode
}

// From returns the exit code attached to err, 0 for a nil
// error and Failure for any other error.
func From(err error) int {
	if err == nil {
		return 0
	}

	ecerr := &exitCodeError{}
	if errors.As(err, &ecerr) {
		return ecerr.exitCode
	}

	return Failure
}

package errors

import (
	"errors"
	"fmt"
)

// Exit statuses, following sysexits(3).
const (
	ExitSuccess  = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
)

// ExitError marks a failure whose diagnostic has already been written to
// standard error. main only needs the status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit status.
//
// Errors that are not ToolErrors only reach main from cobra's argument and
// flag parsing, so they are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	var te *ToolError
	if errors.As(err, &te) {
		return KindExitCode(te.Kind)
	}

	return ExitUsage
}

// KindExitCode returns the exit status for an error kind.
func KindExitCode(kind ErrorKind) int {
	switch kind {
	case KindNoContent, KindInvalidAction:
		return ExitUsage
	case KindDecode, KindParse, KindUnsupported:
		return ExitDataErr
	case KindInteractive, KindConfig, KindInternal:
		return ExitSoftware
	default:
		return ExitSoftware
	}
}

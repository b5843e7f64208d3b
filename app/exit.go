package app

import (
	"errors"
	"fmt"

	"github.com/joshyorko/clikit/prompt"
)

const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNoAnswer = 3
)

// ExitError carries the exit code a command picked for its failure.
type ExitError struct {
	Code int
	Err  error
}

func (it *ExitError) Error() string {
	if it.Err == nil {
		return fmt.Sprintf("exit status %d", it.Code)
	}
	return it.Err.Error()
}

func (it *ExitError) Unwrap() error {
	return it.Err
}

// Exit returns err annotated with the process exit code to use.
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

type usageError struct {
	err error
}

func (it *usageError) Error() string {
	return it.err.Error()
}

func (it *usageError) Unwrap() error {
	return it.err
}

func usage(form string, details ...interface{}) error {
	return &usageError{err: fmt.Errorf(form, details...)}
}

// ExitCode maps a command outcome to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	var misuse *usageError
	if errors.As(err, &misuse) {
		return ExitUsage
	}
	if errors.Is(err, prompt.ErrExhaustedRetries) {
		return ExitNoAnswer
	}
	return ExitFailure
}

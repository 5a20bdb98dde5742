// Package hostenv collects low-level host facts for network tooling:
// which DNS resolvers the system is configured with, which addresses
// are bound locally, and how helper subprocesses must be spawned so
// that their output stays parseable.
//
// The subpackages carry the functionality, the root package only holds
// what is shared between them and their callers.
package hostenv

import (
	"errors"
	"fmt"
)

// FatalError marks a condition the program cannot recover from, such
// as broken platform prerequisites. The hostenv packages never return
// one themselves, they pass it through unchanged so that callers can
// pick it out of any error chain with IsFatal.
type FatalError struct {
	err error
}

// Fatalf returns a new FatalError with the formatted message. The %w
// verb wraps a cause as usual.
func Fatalf(format string, things ...interface{}) *FatalError {
	return &FatalError{err: fmt.Errorf(format, things...)}
}

func (fe *FatalError) Error() string {
	return fe.err.Error()
}

// Unwrap returns the wrapped error.
func (fe *FatalError) Unwrap() error {
	return fe.err
}

// IsFatal reports whether any error in the chain is a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

package osenv

import "errors"

var (
	// ErrNotFound is returned when the desired executable is not found.
	ErrNotFound = errors.New("not found")
)

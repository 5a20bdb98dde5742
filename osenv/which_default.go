//go:build !windows

package osenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/safing/hostenv/log"
)

// Which returns the absolute path of the named executable, looked up
// in SearchPath. A name that already contains a path separator is only
// checked for being executable, not searched. Absence is reported as
// ErrNotFound.
func Which(lg *log.Logger, name string) (string, error) {
	if strings.Contains(name, "/") {
		if isExecutable(name) {
			lg.Verbosef("osenv: found %s", name)
			return name, nil
		}
		lg.Verbosef("osenv: %s is not an executable", name)
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, dir := range SearchPath() {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			lg.Verbosef("osenv: found %s at %s", name, candidate)
			return candidate, nil
		}
	}

	lg.Verbosef("osenv: could not find %s in %s", name, PathString())
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// isExecutable reports whether path is a regular file that the current
// process may execute.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

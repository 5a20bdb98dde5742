//go:build windows

package osenv

import (
	"fmt"
	"os/exec"

	"github.com/safing/hostenv/log"
)

// Which returns the absolute path of the named executable. Resolution
// is delegated to exec.LookPath, which knows the PATHEXT rules.
// Absence is reported as ErrNotFound.
func Which(lg *log.Logger, name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		lg.Verbosef("osenv: could not find %s: %s", name, err)
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	lg.Verbosef("osenv: found %s at %s", name, path)
	return path, nil
}

// Package osenv prepares the inputs needed to spawn helper
// subprocesses: the search path for locating tools, a minimal
// locale-pinned environment and executable lookup.
package osenv

import (
	"os"
	"path/filepath"
	"strings"

	locale "github.com/Xuanwo/go-locale"
	"golang.org/x/exp/slices"

	"github.com/safing/hostenv/log"
)

// SearchPath returns the directories used to locate helper binaries:
// the inherited PATH, the platform defaults and a fixed set of last
// resort locations, deduplicated in first-seen order. Empty entries
// are dropped.
func SearchPath() []string {
	dirs := make([]string, 0, 16)
	for _, set := range [][]string{
		filepath.SplitList(os.Getenv("PATH")),
		defaultSearchPath,
		fallbackSearchPath,
	} {
		for _, dir := range set {
			if dir == "" {
				continue
			}
			if !slices.Contains(dirs, dir) {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

// PathString returns SearchPath joined to a PATH value.
func PathString() string {
	return strings.Join(SearchPath(), string(os.PathListSeparator))
}

// Environ returns the environment for helper subprocesses. It carries
// exactly two variables: the search path and LC_ALL=C, which keeps
// tool output parseable regardless of the user's locale.
func Environ(lg *log.Logger) []string {
	if detectedLocales, err := locale.DetectAll(); err == nil && len(detectedLocales) > 0 {
		lg.Tracef("osenv: overriding locale %s with LC_ALL=C for subprocesses", detectedLocales[0])
	}

	return []string{
		"PATH=" + PathString(),
		"LC_ALL=C",
	}
}

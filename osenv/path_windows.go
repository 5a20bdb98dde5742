//go:build windows

package osenv

// The inherited PATH is authoritative on Windows, it always carries
// the system directories.
var (
	defaultSearchPath  []string
	fallbackSearchPath []string
)

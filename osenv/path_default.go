//go:build !windows

package osenv

// Default and last resort locations for helper binaries. Privileged
// tools are regularly installed in the sbin directories, which user
// PATHs often omit.
var (
	defaultSearchPath  = []string{"/bin", "/usr/bin"}
	fallbackSearchPath = []string{"/bin", "/usr/bin", "/sbin", "/usr/sbin"}
)

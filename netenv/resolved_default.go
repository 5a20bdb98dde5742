//go:build !linux

package netenv

// ResolvedActive reports whether systemd-resolved manages the host's
// resolv.conf. Only ever true on Linux.
func (ne *NetEnv) ResolvedActive() bool {
	return false
}

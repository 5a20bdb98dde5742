package netenv

import (
	"fmt"
	"net"
)

// IsLocal reports whether the given address is bound to this host. It
// probes by binding a listener with an ephemeral port, which is closed
// again right away. An address that is not available locally reports
// false, every other bind failure is returned as an error.
func (ne *NetEnv) IsLocal(address string, family Family) (bool, error) {
	ip := net.ParseIP(address)
	if ip == nil {
		return false, fmt.Errorf("invalid IP address: %q", address)
	}

	network := "tcp4"
	if family == FamilyIPv6 {
		network = "tcp6"
	}

	listener, err := net.ListenTCP(network, &net.TCPAddr{IP: ip})
	if err != nil {
		if isAddrNotAvail(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to bind to %s: %w", address, err)
	}
	_ = listener.Close()
	return true, nil
}

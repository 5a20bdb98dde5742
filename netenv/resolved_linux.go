//go:build linux

package netenv

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

var (
	dbusConn     *dbus.Conn
	dbusConnLock sync.Mutex
)

// ResolvedActive reports whether systemd-resolved manages the host's
// resolv.conf. The stub file starts with a signature comment. When the
// system bus is reachable the service is additionally pinged, as a
// stale stub file can outlive a disabled resolved.
func (ne *NetEnv) ResolvedActive() bool {
	if !ne.resolvConfManagedByResolved() {
		return false
	}
	return ne.resolvedReachable()
}

func (ne *NetEnv) resolvConfManagedByResolved() bool {
	resolvconf, err := os.Open(ne.resolvConfPath)
	if err != nil {
		return false
	}
	defer func() {
		_ = resolvconf.Close()
	}()

	// Only check the header, the first config directive ends it.
	scanner := bufio.NewScanner(resolvconf)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] != '#' {
			return false
		}
		if strings.Contains(line, "systemd-resolved") {
			return true
		}
	}
	return false
}

func (ne *NetEnv) resolvedReachable() bool {
	dbusConnLock.Lock()
	defer dbusConnLock.Unlock()

	var err error
	if dbusConn == nil {
		dbusConn, err = dbus.SystemBus()
	}
	if err != nil {
		// Without a bus there is no verdict, trust the file signature.
		ne.log.Tracef("netenv: could not connect to system bus: %s", err)
		return true
	}

	object := dbusConn.Object("org.freedesktop.resolve1", "/org/freedesktop/resolve1")
	if call := object.Call("org.freedesktop.DBus.Peer.Ping", 0); call.Err != nil {
		ne.log.Tracef("netenv: systemd-resolved is not reachable: %s", call.Err)
		return false
	}
	return true
}

// Package netenv answers questions about the network environment of
// the host: which nameservers the system is configured with, which
// addresses are assigned and whether an address is bound locally.
package netenv

import (
	mrand "math/rand"
	"sync"
	"time"

	"github.com/tevino/abool"

	"github.com/safing/hostenv/log"
)

// Well-known resolv.conf locations. When systemd-resolved manages
// /etc/resolv.conf, it only points at the local stub listener and the
// upstream servers are listed in resolved's own copy instead.
const (
	resolvConfPath         = "/etc/resolv.conf"
	resolvedResolvConfPath = "/run/systemd/resolve/resolv.conf"
)

// NetEnv provides access to the network environment of the host.
type NetEnv struct {
	log *log.Logger

	rngLock sync.Mutex
	rng     *mrand.Rand

	ipv6Enabled *abool.AtomicBool

	resolvConfPath         string
	resolvedResolvConfPath string
}

// New returns a new NetEnv. A nil logger disables diagnostics. The
// random source is used for nameserver selection, a nil rng selects a
// time seeded source.
func New(logger *log.Logger, rng *mrand.Rand) *NetEnv {
	if rng == nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}

	ne := &NetEnv{
		log:                    logger,
		rng:                    rng,
		ipv6Enabled:            abool.NewBool(true),
		resolvConfPath:         resolvConfPath,
		resolvedResolvConfPath: resolvedResolvConfPath,
	}
	ne.checkForIPv6Stack()
	return ne
}

// IPv6Enabled returns whether the device has an active IPv6 stack.
// This is only checked once on creation in order to maintain consistency.
func (ne *NetEnv) IPv6Enabled() bool {
	return ne.ipv6Enabled.IsSet()
}

func (ne *NetEnv) checkForIPv6Stack() {
	_, v6IPs, err := ne.GetAssignedAddresses()
	if err != nil {
		ne.log.Debugf("netenv: failed to get assigned addresses to check for ipv6 stack: %s", err)
		return
	}

	// Set IPv6 as enabled if any IPv6 addresses are found.
	ne.ipv6Enabled.SetTo(len(v6IPs) > 0)
}

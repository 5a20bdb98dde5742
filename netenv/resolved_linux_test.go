//go:build linux

package netenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvConfManagedByResolved(t *testing.T) {
	t.Parallel()

	ne := newTestEnv(t)

	ne.resolvConfPath = writeTestFile(t, "stub-resolv.conf", `# This is /run/systemd/resolve/stub-resolv.conf managed by man:systemd-resolved(8).
# Do not edit.
nameserver 127.0.0.53
options edns0 trust-ad
`)
	assert.True(t, ne.resolvConfManagedByResolved())

	ne.resolvConfPath = writeTestFile(t, "nm-resolv.conf", `# Generated by NetworkManager
nameserver 10.0.0.1
`)
	assert.False(t, ne.resolvConfManagedByResolved())

	ne.resolvConfPath = writeTestFile(t, "plain-resolv.conf", "nameserver 10.0.0.1\n")
	assert.False(t, ne.resolvConfManagedByResolved())

	ne.resolvConfPath = writeTestFile(t, "empty-resolv.conf", "")
	assert.False(t, ne.resolvConfManagedByResolved())

	ne.resolvConfPath = filepath.Join(t.TempDir(), "does-not-exist")
	assert.False(t, ne.resolvConfManagedByResolved())
}

package netenv

import (
	"testing"
)

func TestGetAssignedAddresses(t *testing.T) {
	t.Parallel()

	ne := newTestEnv(t)
	ipv4, ipv6, err := ne.GetAssignedAddresses()
	t.Logf("all v4: %v", ipv4)
	t.Logf("all v6: %v", ipv6)
	if err != nil {
		t.Fatalf("failed to get addresses: %s", err)
	}
	if len(ipv4) == 0 && len(ipv6) == 0 {
		t.Fatal("GetAssignedAddresses did not return any addresses")
	}
}

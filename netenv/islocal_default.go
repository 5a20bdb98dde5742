//go:build !windows

package netenv

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isAddrNotAvail(err error) bool {
	return errors.Is(err, unix.EADDRNOTAVAIL)
}

//go:build windows

package netenv

import (
	"errors"

	"golang.org/x/sys/windows"
)

func isAddrNotAvail(err error) bool {
	return errors.Is(err, windows.WSAEADDRNOTAVAIL)
}

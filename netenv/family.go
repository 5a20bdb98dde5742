package netenv

import (
	"strconv"
	"strings"
)

// Family identifies the address family of a textual IP address.
type Family uint8

// Address Families.
const (
	FamilyIPv4 Family = iota
	FamilyIPv6
)

// FamilyOf returns the address family of the given textual address.
// Classification is purely notational: anything containing a colon
// counts as IPv6, everything else as IPv4. It is total and does not
// reject malformed input.
func FamilyOf(address string) Family {
	if strings.Contains(address, ":") {
		return FamilyIPv6
	}
	return FamilyIPv4
}

// String returns the name of the address family, or its numeric value
// if it is unknown.
func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return strconv.Itoa(int(f))
	}
}

// Package validate turns raw command-line strings into the typed values sent
// to the registry. Every failure carries a human-readable reason that callers
// surface verbatim.
package validate

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Bounds enforced by the registry.
const (
	MaxListingType = 255
	MaxPort        = 65535
	MaxQueryLimit  = 255
	MaxListed      = 2
)

var (
	// ErrNotInteger is returned when a value is expected to be a decimal integer.
	ErrNotInteger = errors.New("value must be an integer")
	// ErrNotIdentifier is returned when a value is neither a listing ID nor an address.
	ErrNotIdentifier = errors.New("value must be either an integer, an IP address or a CIDR address")
	// ErrNotAddress is returned when a value is neither an IP address nor a CIDR block.
	ErrNotAddress = errors.New("value must be either an IP address or a CIDR address")
)

// Address is either a single host or a CIDR network.
type Address struct {
	prefix netip.Prefix
}

// IsHost reports whether the address covers exactly one IP.
func (a Address) IsHost() bool { return a.prefix.IsSingleIP() }

// Prefix returns the underlying network.
func (a Address) Prefix() netip.Prefix { return a.prefix }

// String renders a host as a bare address and a network in CIDR notation.
func (a Address) String() string {
	if a.IsHost() {
		return a.prefix.Addr().String()
	}
	return a.prefix.String()
}

// Identifier is either a positive listing ID or an Address. Exactly one of the
// two is populated.
type Identifier struct {
	id      int
	address Address
}

// IsID reports whether the identifier holds a listing ID.
func (i Identifier) IsID() bool { return i.id > 0 }

// ID returns the listing ID, or 0 if the identifier holds an address.
func (i Identifier) ID() int { return i.id }

// Address returns the address, which is the zero value for listing IDs.
func (i Identifier) Address() Address { return i.address }

// String renders the identifier the way it is sent to the registry.
func (i Identifier) String() string {
	if i.IsID() {
		return strconv.Itoa(i.id)
	}
	return i.address.String()
}

// ParseIdentifier tries an integer first and then an IP address or CIDR block.
func ParseIdentifier(s string) (Identifier, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 {
			return Identifier{}, errGreaterThan(0)
		}
		return Identifier{id: n}, nil
	}

	address, err := ParseIPOrCIDR(s)
	if err != nil {
		return Identifier{}, ErrNotIdentifier
	}
	return Identifier{address: address}, nil
}

// ParseIPOrCIDR parses a bare address or a CIDR block. Host bits of a CIDR
// block are cleared rather than rejected, so "10.1.2.3/8" becomes "10.0.0.0/8".
// A block whose prefix covers the whole address collapses to a host.
func ParseIPOrCIDR(s string) (Address, error) {
	s = strings.TrimSpace(s)

	if !strings.Contains(s, "/") {
		addr, err := netip.ParseAddr(s)
		if err != nil || addr.Zone() != "" {
			return Address{}, ErrNotAddress
		}
		return Address{prefix: netip.PrefixFrom(addr, addr.BitLen())}, nil
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return Address{}, ErrNotAddress
	}
	return Address{prefix: prefix.Masked()}, nil
}

// ParsePort accepts 1-65535.
func ParsePort(s string) (int, error) { return parseRange(s, 1, MaxPort) }

// ParseListingType accepts 1-255.
func ParseListingType(s string) (int, error) { return parseRange(s, 1, MaxListingType) }

// ParseQueryLimit accepts 1-255.
//
// The registry documents 1000 as the upper bound but rejects anything above 255.
func ParseQueryLimit(s string) (int, error) { return parseRange(s, 1, MaxQueryLimit) }

// ParsePositiveInt accepts any integer greater than zero.
func ParsePositiveInt(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errGreaterThan(0)
	}
	return n, nil
}

// ParseListed accepts the listing states 0, 1 and 2.
func ParseListed(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > MaxListed {
		return 0, fmt.Errorf("value must be one of 0, 1 or %d", MaxListed)
	}
	return n, nil
}

// parseRange parses an integer and checks it against the inclusive range [lo, hi].
func parseRange(s string, lo, hi int) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < lo {
		return 0, errGreaterThan(lo - 1)
	}
	if n > hi {
		return 0, fmt.Errorf("value must be less than %d", hi+1)
	}
	return n, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

func errGreaterThan(n int) error {
	return fmt.Errorf("value must be greater than %d", n)
}

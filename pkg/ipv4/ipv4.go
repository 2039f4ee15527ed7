// Package ipv4 converts dotted-decimal IPv4 text into the 32-bit keys used by
// the legacy GeoIP databases.
package ipv4

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ErrInvalidAddress is wrapped by every error returned from Parse.
var ErrInvalidAddress = errors.New("invalid IPv4 address")

// InvalidAddressError describes why a string is not a dotted-decimal IPv4
// address.
type InvalidAddressError struct {
	// Input is the text presented to Parse.
	Input string
	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements the error interface for *InvalidAddressError.
func (err *InvalidAddressError) Error() string {
	return fmt.Sprintf("%q is not a valid IPv4 address: %s", err.Input, err.Reason)
}

// Unwrap returns ErrInvalidAddress so callers can use errors.Is.
func (err *InvalidAddressError) Unwrap() error {
	return ErrInvalidAddress
}

// Addr is an IPv4 address in host order: octet0<<24 | octet1<<16 | octet2<<8 | octet3.
type Addr uint32

// Parse converts dotted-decimal text into an Addr. Only the canonical form is
// accepted: four decimal octets in [0,255] without leading zeros, signs or
// surrounding whitespace.
func Parse(text string) (Addr, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 4 {
		return 0, &InvalidAddressError{Input: text, Reason: fmt.Sprintf("expected 4 octets, got %d", len(parts))}
	}

	var addr uint32
	for i, part := range parts {
		octet, err := parseOctet(part)
		if err != nil {
			return 0, &InvalidAddressError{Input: text, Reason: fmt.Sprintf("octet %d: %s", i+1, err)}
		}
		addr = addr<<8 | uint32(octet)
	}

	return Addr(addr), nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(text string) Addr {
	addr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return addr
}

// FromNetip converts an IPv4 (or IPv4-mapped IPv6) netip.Addr.
func FromNetip(ip netip.Addr) (Addr, bool) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return 0, false
	}
	b := ip.As4()
	return Addr(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), true
}

// Netip returns the address as a netip.Addr.
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

// Octets returns the four octets, most significant first.
func (a Addr) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// Bit reports the bit at the given depth, where depth 31 is the most
// significant bit.
func (a Addr) Bit(depth int) int {
	return int(uint32(a)>>uint(depth)) & 1
}

// Prefix returns the network of the given length containing a.
func (a Addr) Prefix(bits int) netip.Prefix {
	prefix, err := a.Netip().Prefix(bits)
	if err != nil {
		return netip.Prefix{}
	}
	return prefix
}

// String formats the address in dotted-decimal notation.
func (a Addr) String() string {
	o := a.Octets()
	var b strings.Builder
	b.Grow(15)
	for i, octet := range o {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(octet)))
	}
	return b.String()
}

// parseOctet validates a single decimal octet.
func parseOctet(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	if len(s) > 3 {
		return 0, errors.New("too long")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-numeric character %q", s[i])
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, errors.New("leading zero")
	}
	value, _ := strconv.Atoi(s)
	if value > 255 {
		return 0, fmt.Errorf("value %d out of range", value)
	}
	return value, nil
}

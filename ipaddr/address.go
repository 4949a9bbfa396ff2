// Package ipaddr implements fixed-width IP address values for CIDR
// subnetting: parsing, formatting (including IPv6 zero-run compression),
// prefix masks, wraparound arithmetic and block capacity math.
package ipaddr

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors
var (
	ErrInvalidAddress = errors.New("ipaddr: invalid address")
	ErrInvalidPrefix  = errors.New("ipaddr: invalid prefix length")
	ErrIndexRange     = errors.New("ipaddr: index out of range")
)

// Family identifies one of the two supported fixed address widths.
type Family int

const (
	IPv4 Family = iota
	IPv6
)

// Bits returns the family's address width in bits.
func (f Family) Bits() int {
	if f == IPv4 {
		return 32
	}
	return 128
}

// Octets returns the family's address width in octets.
func (f Family) Octets() int { return f.Bits() / 8 }

func (f Family) String() string {
	if f == IPv4 {
		return "IPv4"
	}
	return "IPv6"
}

// Address is a fixed-width IP address stored as octets, most significant
// first: 4 for IPv4, 16 for IPv6. The width never changes after construction.
// Arithmetic methods return fresh values and wrap within the width.
type Address struct {
	family Family
	octets []byte
}

// Parse converts a textual address into an Address. Text containing ':' is
// parsed as IPv6, everything else as IPv4.
func Parse(s string) (Address, error) {
	if strings.Contains(s, ":") {
		return ParseIPv6(s)
	}
	return ParseIPv4(s)
}

// Family returns the address family.
func (a Address) Family() Family { return a.family }

func (a Address) clone() Address {
	return Address{family: a.family, octets: append([]byte(nil), a.octets...)}
}

// Octet returns the 8-bit value at index i, most significant first.
func (a Address) Octet(i int) (byte, error) {
	if i < 0 || i >= len(a.octets) {
		return 0, fmt.Errorf("%w: octet %d of %d", ErrIndexRange, i, len(a.octets))
	}
	return a.octets[i], nil
}

// Compare performs lexicographic comparison: -1 if a<b, 0 if equal, 1 if a>b.
func (a Address) Compare(b Address) int { return compareBytes(a.octets, b.octets) }

// Inc returns a+1 (mod 2^width).
func (a Address) Inc() Address {
	r := a.clone()
	incBytes(r.octets)
	return r
}

// Dec returns a-1 (mod 2^width).
func (a Address) Dec() Address {
	r := a.clone()
	decBytes(r.octets)
	return r
}

// Add returns a+n (mod 2^width). A negative n subtracts.
func (a Address) Add(n int) Address {
	if n < 0 {
		return a.Sub(-n)
	}
	r := a.clone()
	addIntBytes(r.octets, n)
	return r
}

// Sub returns a-n (mod 2^width). A negative n adds.
func (a Address) Sub(n int) Address {
	if n < 0 {
		return a.Add(-n)
	}
	r := a.clone()
	subIntBytes(r.octets, n)
	return r
}

// AddBytes returns a+inc (mod 2^width), where inc is a big-endian byte
// vector. A vector shorter than the address contributes zero high octets;
// anything past the address width is dropped.
func (a Address) AddBytes(inc []byte) Address {
	r := a.clone()
	addVecBytes(r.octets, inc)
	return r
}

// And returns the address masked to its network bits. Octets past the mask's
// stored length are cleared.
func (a Address) And(m Mask) Address {
	r := a.clone()
	andMaskBytes(r.octets, m.octets)
	return r
}

// Or returns the address with the mask's bits set. Octets past the mask's
// stored length saturate to 255.
func (a Address) Or(m Mask) Address {
	r := a.clone()
	orMaskBytes(r.octets, m.octets)
	return r
}

// PrefixLengthCompatible reports whether p is a valid prefix length for the
// address family.
func (a Address) PrefixLengthCompatible(p int) bool {
	return p >= 1 && p <= a.family.Bits()
}

// Capacity returns the number of addresses in a block of prefix length p:
// 2^(bits-p). A prefix at or past the family width yields 1 (a single host).
func (a Address) Capacity(p int) *big.Int {
	bits := a.family.Bits()
	if p >= bits {
		return big.NewInt(1)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(bits-p))
}

// String returns the canonical textual form: dotted decimal for IPv4,
// compressed lowercase hex groups for IPv6.
func (a Address) String() string {
	if a.family == IPv4 {
		return a.renderIPv4()
	}
	return a.renderIPv6()
}

// Expanded returns the fully expanded form: for IPv6 all 8 zero-padded hex
// groups, for IPv4 the same as String.
func (a Address) Expanded() string {
	if a.family == IPv4 {
		return a.renderIPv4()
	}
	return a.expandedIPv6()
}

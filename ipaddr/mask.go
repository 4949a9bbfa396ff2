package ipaddr

import "fmt"

// Prefix length bounds shared by both families; a family further restricts
// the upper bound to its own width via Address.PrefixLengthCompatible.
const (
	MinPrefixLength = 1
	MaxPrefixLength = 128
)

// Mask is a network mask derived from a prefix length. Only the octets needed
// to express the prefix bits are stored, ceil(prefixLength/8) of them; the
// AND/OR operations on Address define how a mask shorter than an address
// saturates the remaining octets.
type Mask struct {
	prefixLength int
	octets       []byte
}

// NewMask builds a mask of prefixLength leading 1-bits.
func NewMask(prefixLength int) (Mask, error) {
	if prefixLength < MinPrefixLength || prefixLength > MaxPrefixLength {
		return Mask{}, fmt.Errorf("%w: must be between %d and %d", ErrInvalidPrefix, MinPrefixLength, MaxPrefixLength)
	}
	octets := make([]byte, 0, (prefixLength+7)/8)
	for remaining := prefixLength; remaining > 0; {
		if remaining >= 8 {
			octets = append(octets, 0xFF)
			remaining -= 8
		} else {
			octets = append(octets, 0xFF<<(8-remaining))
			remaining = 0
		}
	}
	return Mask{prefixLength: prefixLength, octets: octets}, nil
}

// PrefixLength returns the prefix length the mask was built from.
func (m Mask) PrefixLength() int { return m.prefixLength }

// Size returns the number of stored octets.
func (m Mask) Size() int { return len(m.octets) }

// Octet returns the stored octet at index i, most significant first.
func (m Mask) Octet(i int) (byte, error) {
	if i < 0 || i >= len(m.octets) {
		return 0, fmt.Errorf("%w: mask octet %d of %d", ErrIndexRange, i, len(m.octets))
	}
	return m.octets[i], nil
}

// Complement returns the host mask: the same octet count with every bit
// flipped. The prefix length is retained but callers use a complement only
// for its octets, via Address.Or.
func (m Mask) Complement() Mask {
	octets := make([]byte, len(m.octets))
	for i, o := range m.octets {
		octets[i] = ^o
	}
	return Mask{prefixLength: m.prefixLength, octets: octets}
}

package ipaddr

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ipv6Octets  = 16
	ipv6Hextets = 8
)

// ParseIPv6 converts colon-separated hex text into an IPv6 Address. At most
// one "::" zero compression is allowed; every group must be non-empty
// hexadecimal between 0 and 0xffff, and the total must work out to exactly 8
// groups once the compression gap is zero-filled.
func ParseIPv6(s string) (Address, error) {
	groups, err := splitHextets(s)
	if err != nil {
		return Address{}, err
	}
	octets := make([]byte, ipv6Octets)
	for i, group := range groups {
		if group == "" || !isHexDigits(group) {
			return Address{}, fmt.Errorf("%w: hextets must be non-empty and contain only hexadecimal digits", ErrInvalidAddress)
		}
		v, err := strconv.ParseUint(group, 16, 32)
		if err != nil || v > 0xFFFF {
			return Address{}, fmt.Errorf("%w: hextets must be between 0x0000 and 0xffff", ErrInvalidAddress)
		}
		octets[2*i] = byte(v >> 8)
		octets[2*i+1] = byte(v)
	}
	return Address{family: IPv6, octets: octets}, nil
}

// splitHextets resolves the "::" compression into exactly 8 textual groups.
func splitHextets(s string) ([]string, error) {
	i := strings.Index(s, "::")
	if i < 0 {
		groups := strings.Split(s, ":")
		if len(groups) != ipv6Hextets {
			return nil, fmt.Errorf("%w: must have %d parts", ErrInvalidAddress, ipv6Hextets)
		}
		return groups, nil
	}
	if strings.Contains(s[i+2:], "::") {
		return nil, fmt.Errorf("%w: at most one \"::\" is allowed", ErrInvalidAddress)
	}
	var left, right []string
	if l := s[:i]; l != "" {
		left = strings.Split(l, ":")
	}
	if r := s[i+2:]; r != "" {
		right = strings.Split(r, ":")
	}
	if len(left)+len(right) > ipv6Hextets {
		return nil, fmt.Errorf("%w: must have at most %d parts", ErrInvalidAddress, ipv6Hextets)
	}
	groups := make([]string, 0, ipv6Hextets)
	groups = append(groups, left...)
	for len(groups) < ipv6Hextets-len(right) {
		groups = append(groups, "0")
	}
	return append(groups, right...), nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hextet returns the 16-bit group at index i, most significant first, read
// from two consecutive stored octets.
func (a Address) Hextet(i int) (uint16, error) {
	n := len(a.octets) / 2
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: hextet %d of %d", ErrIndexRange, i, n)
	}
	return uint16(a.octets[2*i])<<8 | uint16(a.octets[2*i+1]), nil
}

func (a Address) hextets() []uint16 {
	h := make([]uint16, len(a.octets)/2)
	for i := range h {
		h[i] = uint16(a.octets[2*i])<<8 | uint16(a.octets[2*i+1])
	}
	return h
}

// longestZeroRun returns the inclusive bounds of the longest run of zero
// groups, the earliest-starting run winning ties, or (-1, -1) if every group
// is non-zero. A single zero group is a valid run.
func longestZeroRun(h []uint16) (start, end int) {
	longestStart, longestLength := -1, 0
	currentStart, currentLength := -1, 0
	for i, g := range h {
		if g == 0 {
			if currentStart == -1 {
				currentStart = i
			}
			currentLength++
			continue
		}
		if currentLength > longestLength {
			longestStart, longestLength = currentStart, currentLength
		}
		currentStart, currentLength = -1, 0
	}
	if currentLength > longestLength {
		longestStart, longestLength = currentStart, currentLength
	}
	if longestStart == -1 {
		return -1, -1
	}
	return longestStart, longestStart + longestLength - 1
}

// renderIPv6 prints the groups in lowercase hex without leading zeros,
// compressing the longest zero run to "::".
func (a Address) renderIPv6() string {
	h := a.hextets()
	start, end := longestZeroRun(h)
	var b strings.Builder
	for i := 0; i < ipv6Hextets; {
		if i == start {
			b.WriteString("::")
			i = end + 1
			continue
		}
		if i > 0 && i != end+1 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(h[i]), 16))
		i++
	}
	return b.String()
}

// expandedIPv6 prints all 8 groups as zero-padded 4-digit hex.
func (a Address) expandedIPv6() string {
	h := a.hextets()
	parts := make([]string, len(h))
	for i, g := range h {
		parts[i] = fmt.Sprintf("%04x", g)
	}
	return strings.Join(parts, ":")
}

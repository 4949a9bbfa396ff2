package ipaddr

import (
	"fmt"
	"strconv"
	"strings"
)

const ipv4Octets = 4

// ParseIPv4 converts dotted decimal text into an IPv4 Address. The text must
// have exactly 4 non-empty, all-digit parts, each between 0 and 255.
func ParseIPv4(s string) (Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != ipv4Octets {
		return Address{}, fmt.Errorf("%w: must have %d parts", ErrInvalidAddress, ipv4Octets)
	}
	octets := make([]byte, ipv4Octets)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return Address{}, fmt.Errorf("%w: parts must be non-empty and contain only digits", ErrInvalidAddress)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return Address{}, fmt.Errorf("%w: parts must be between 0 and 255", ErrInvalidAddress)
		}
		octets[i] = byte(v)
	}
	return Address{family: IPv4, octets: octets}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// renderIPv4 joins the octets with '.', without leading zeros.
func (a Address) renderIPv4() string {
	parts := make([]string, len(a.octets))
	for i, o := range a.octets {
		parts[i] = strconv.Itoa(int(o))
	}
	return strings.Join(parts, ".")
}

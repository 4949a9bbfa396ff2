package subnet

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/SIIR3X/network-segmenter/ipaddr"
)

// Segment splits the network into count child subnets of equal size, each at
// the smallest prefix length that fits count blocks, and replaces any
// previously computed children. The children partition the parent in base
// address order; when count is not a power of two the tail of the parent's
// space is left uncovered.
func (n *Network) Segment(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: must be greater than 0", ErrSubnetCount)
	}
	if n.HostCount().Cmp(big.NewInt(int64(count))) < 0 {
		return fmt.Errorf("%w: must not exceed the network capacity", ErrSubnetCount)
	}
	newPrefixLength := n.PrefixLength() + ceilLog2(count)
	if newPrefixLength > n.ip.Family().Bits() {
		return fmt.Errorf("%w: /%d", ErrPrefixExceeded, newPrefixLength)
	}
	step := stepVector(n.ip.Family(), newPrefixLength)
	subnets := make([]*Network, 0, count)
	cur := n.ip
	for i := 0; i < count; i++ {
		child, err := New(cur, newPrefixLength)
		if err != nil {
			return err
		}
		subnets = append(subnets, child)
		cur = cur.AddBytes(step)
	}
	n.subnets = subnets
	return nil
}

// ceilLog2 returns the number of extra prefix bits needed to address count
// subnets, i.e. ceil(log2(count)).
func ceilLog2(count int) int {
	return bits.Len(uint(count - 1))
}

// stepVector returns a byte vector holding the size of one child block: a
// single bit at position b = width - newPrefixLength counted from the least
// significant bit, which lands in octet octets-1-b/8 at bit b mod 8.
func stepVector(f ipaddr.Family, newPrefixLength int) []byte {
	b := f.Bits() - newPrefixLength
	step := make([]byte, f.Octets())
	step[len(step)-1-b/8] = 1 << (b % 8)
	return step
}

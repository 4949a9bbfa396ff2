// Package subnet models CIDR networks on top of ipaddr values: construction
// with derived host ranges and broadcast addresses, segmentation into child
// subnets, and aggregation of CIDR lists.
package subnet

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/SIIR3X/network-segmenter/ipaddr"
)

// Sentinel errors
var (
	ErrIncompatiblePrefix = errors.New("subnet: prefix length is not compatible with address family")
	ErrSubnetCount        = errors.New("subnet: invalid number of subnets")
	ErrPrefixExceeded     = errors.New("subnet: new prefix length exceeds the address family maximum")
	ErrIndexRange         = errors.New("subnet: index out of range")
)

// Network is a CIDR block: the masked base address, its mask, and the derived
// usable host range. IPv4 networks also carry a broadcast address. A Network
// exclusively owns its segmentation children; Segment replaces the whole list.
type Network struct {
	ip        ipaddr.Address
	mask      ipaddr.Mask
	first     ipaddr.Address
	last      ipaddr.Address
	broadcast ipaddr.Address // IPv4 only
	subnets   []*Network
}

// New builds a Network from an address and prefix length. The address is
// masked down to its network bits; the first usable host is base+1 and the
// last is the base with all host bits set, minus one for IPv4 where that
// all-ones address is the broadcast. At the family's maximum prefix the block
// is a single host: first, last and broadcast all equal the base.
func New(ip ipaddr.Address, prefixLength int) (*Network, error) {
	if !ip.PrefixLengthCompatible(prefixLength) {
		return nil, fmt.Errorf("%w: /%d for %s", ErrIncompatiblePrefix, prefixLength, ip.Family())
	}
	mask, err := ipaddr.NewMask(prefixLength)
	if err != nil {
		return nil, err
	}
	base := ip.And(mask)
	n := &Network{ip: base, mask: mask}
	if prefixLength == ip.Family().Bits() {
		n.first, n.last = base, base
		if ip.Family() == ipaddr.IPv4 {
			n.broadcast = base
		}
		return n, nil
	}
	n.first = base.Inc()
	n.last = base.Or(mask.Complement())
	if ip.Family() == ipaddr.IPv4 {
		n.broadcast = n.last
		n.last = n.last.Dec()
	}
	return n, nil
}

// IP returns the network's base address.
func (n *Network) IP() ipaddr.Address { return n.ip }

// Mask returns the network's mask.
func (n *Network) Mask() ipaddr.Mask { return n.mask }

// PrefixLength returns the prefix length.
func (n *Network) PrefixLength() int { return n.mask.PrefixLength() }

// FirstHost returns the first usable address.
func (n *Network) FirstHost() ipaddr.Address { return n.first }

// LastHost returns the last usable address.
func (n *Network) LastHost() ipaddr.Address { return n.last }

// Broadcast returns the broadcast address; ok is false for IPv6, which has
// no broadcast concept.
func (n *Network) Broadcast() (ipaddr.Address, bool) {
	if n.ip.Family() != ipaddr.IPv4 {
		return ipaddr.Address{}, false
	}
	return n.broadcast, true
}

// HostCount returns the number of addresses in the block.
func (n *Network) HostCount() *big.Int {
	return n.ip.Capacity(n.mask.PrefixLength())
}

// String renders the network in canonical base/prefix form.
func (n *Network) String() string {
	return fmt.Sprintf("%s/%d", n.ip, n.mask.PrefixLength())
}

// Subnets returns the children produced by the last Segment call, in base
// address order.
func (n *Network) Subnets() []*Network { return n.subnets }

// Subnet returns the i-th child.
func (n *Network) Subnet(i int) (*Network, error) {
	if i < 0 || i >= len(n.subnets) {
		return nil, fmt.Errorf("%w: subnet %d of %d", ErrIndexRange, i, len(n.subnets))
	}
	return n.subnets[i], nil
}

package subnet

import (
	"net/netip"

	"go4.org/netipx"
)

// Aggregate merges the given prefixes into the minimal covering list,
// combining sibling and contained networks. Families may be mixed; the
// result is sorted by address.
func Aggregate(prefixes []netip.Prefix) ([]netip.Prefix, error) {
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(p.Masked())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, err
	}
	return set.Prefixes(), nil
}

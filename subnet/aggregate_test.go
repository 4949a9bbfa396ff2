package subnet

import (
	"net/netip"
	"testing"
)

func mustPrefixes(t *testing.T, in ...string) []netip.Prefix {
	t.Helper()
	out := make([]netip.Prefix, len(in))
	for i, s := range in {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = p
	}
	return out
}

func TestAggregateSiblings(t *testing.T) {
	res, err := Aggregate(mustPrefixes(t, "1.2.3.0/26", "1.2.3.64/26"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].String() != "1.2.3.0/25" {
		t.Fatalf("unexpected: %v", res)
	}
}

func TestAggregateIPv6(t *testing.T) {
	res, err := Aggregate(mustPrefixes(t, "2001:db8::/65", "2001:db8:0:0:8000::/65"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].String() != "2001:db8::/64" {
		t.Fatalf("unexpected: %v", res)
	}
}

func TestAggregateDisjoint(t *testing.T) {
	res, err := Aggregate(mustPrefixes(t, "10.0.0.0/24", "192.168.0.0/24"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 prefixes, got %v", res)
	}
}

func TestAggregateContained(t *testing.T) {
	res, err := Aggregate(mustPrefixes(t, "10.0.0.0/16", "10.0.42.0/24"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].String() != "10.0.0.0/16" {
		t.Fatalf("unexpected: %v", res)
	}
}

func TestAggregateSegments(t *testing.T) {
	// segmenting and re-aggregating a network must return the original block
	n, err := parseTestCIDR("172.16.0.0/20")
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Segment(8); err != nil {
		t.Fatal(err)
	}
	var prefixes []netip.Prefix
	for _, s := range n.Subnets() {
		p, err := netip.ParsePrefix(s.String())
		if err != nil {
			t.Fatal(err)
		}
		prefixes = append(prefixes, p)
	}
	res, err := Aggregate(prefixes)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].String() != "172.16.0.0/20" {
		t.Fatalf("unexpected: %v", res)
	}
}

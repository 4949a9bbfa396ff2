package ipaddr

import (
	"errors"
	"testing"
)

func TestNewMask(t *testing.T) {
	m, err := NewMask(24)
	if err != nil {
		t.Fatal(err)
	}
	if m.PrefixLength() != 24 || m.Size() != 3 {
		t.Fatalf("unexpected mask: /%d size %d", m.PrefixLength(), m.Size())
	}
	for i := 0; i < 3; i++ {
		o, err := m.Octet(i)
		if err != nil || o != 0xFF {
			t.Fatalf("octet %d: %02x %v", i, o, err)
		}
	}
}

func TestNewMaskPartialOctet(t *testing.T) {
	m, err := NewMask(26)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != 4 {
		t.Fatalf("size: %d", m.Size())
	}
	o, _ := m.Octet(3)
	if o != 0xC0 {
		t.Fatalf("partial octet: %02x", o)
	}
}

func TestMaskOctetCount(t *testing.T) {
	for p := MinPrefixLength; p <= MaxPrefixLength; p++ {
		m, err := NewMask(p)
		if err != nil {
			t.Fatalf("/%d: %v", p, err)
		}
		if want := (p + 7) / 8; m.Size() != want {
			t.Fatalf("/%d: size %d, want %d", p, m.Size(), want)
		}
		last, _ := m.Octet(m.Size() - 1)
		if zeroBits := (8 - p%8) % 8; last&byte(1<<zeroBits-1) != 0 {
			t.Fatalf("/%d: low bits of last octet not clear: %02x", p, last)
		}
	}
}

func TestNewMaskRange(t *testing.T) {
	for _, p := range []int{0, -1, 129} {
		if _, err := NewMask(p); !errors.Is(err, ErrInvalidPrefix) {
			t.Fatalf("expected ErrInvalidPrefix for /%d, got %v", p, err)
		}
	}
}

func TestMaskComplement(t *testing.T) {
	m, _ := NewMask(26)
	c := m.Complement()
	if c.Size() != m.Size() || c.PrefixLength() != m.PrefixLength() {
		t.Fatal("complement shape mismatch")
	}
	for i := 0; i < m.Size(); i++ {
		mo, _ := m.Octet(i)
		co, _ := c.Octet(i)
		if mo^co != 0xFF {
			t.Fatalf("octet %d not inverted: %02x %02x", i, mo, co)
		}
	}
}

func TestMaskOctetRange(t *testing.T) {
	m, _ := NewMask(24)
	if _, err := m.Octet(3); !errors.Is(err, ErrIndexRange) {
		t.Fatal("expected index range error")
	}
	if _, err := m.Octet(-1); !errors.Is(err, ErrIndexRange) {
		t.Fatal("expected index range error for negative index")
	}
}

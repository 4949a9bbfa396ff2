package ipaddr

// Big-endian fixed-width byte vector arithmetic. Every operation works in
// place on its target slice and wraps within the slice's width: carry or
// borrow past the most significant octet is dropped.

// incBytes adds one, propagating the carry from the least significant octet.
func incBytes(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 255 {
			b[i]++
			return
		}
		b[i] = 0
	}
}

// decBytes subtracts one, propagating the borrow from the least significant
// octet.
func decBytes(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			b[i]--
			return
		}
		b[i] = 255
	}
}

// addIntBytes adds a nonnegative integer, tracking a running carry and
// stopping once it reaches zero.
func addIntBytes(b []byte, n int) {
	carry := n
	for i := len(b) - 1; i >= 0 && carry != 0; i-- {
		sum := int(b[i]) + carry&0xFF
		carry >>= 8
		if sum > 255 {
			sum -= 256
			carry++
		}
		b[i] = byte(sum)
	}
}

// subIntBytes subtracts a nonnegative integer, tracking a running borrow and
// stopping once it reaches zero.
func subIntBytes(b []byte, n int) {
	borrow := n
	for i := len(b) - 1; i >= 0 && borrow != 0; i-- {
		diff := int(b[i]) - borrow&0xFF
		borrow >>= 8
		if diff < 0 {
			diff += 256
			borrow++
		}
		b[i] = byte(diff)
	}
}

// addVecBytes adds a big-endian byte vector pairwise from the least
// significant octet. A vector shorter than the target contributes zero for
// its missing high octets; vector octets beyond the target's width are
// dropped along with any final carry.
func addVecBytes(b, inc []byte) {
	carry := 0
	j := len(inc) - 1
	for i := len(b) - 1; i >= 0 && (j >= 0 || carry != 0); i-- {
		sum := int(b[i]) + carry
		if j >= 0 {
			sum += int(inc[j])
			j--
		}
		b[i] = byte(sum)
		carry = sum >> 8
	}
}

// andMaskBytes applies mask octets from the most significant position. Octets
// past the mask's length are cleared: a short mask has no network bits there.
func andMaskBytes(b, mask []byte) {
	for i := range b {
		if i < len(mask) {
			b[i] &= mask[i]
		} else {
			b[i] = 0
		}
	}
}

// orMaskBytes applies mask octets from the most significant position. Octets
// past the mask's length saturate to 255: a short mask is all host bits there.
func orMaskBytes(b, mask []byte) {
	for i := range b {
		if i < len(mask) {
			b[i] |= mask[i]
		} else {
			b[i] = 255
		}
	}
}

// compareBytes performs lexicographic comparison: -1 if a<b, 0 if equal,
// 1 if a>b.
func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	if len(a) == len(b) {
		return 0
	}
	if len(a) < len(b) {
		return -1
	}
	return 1
}

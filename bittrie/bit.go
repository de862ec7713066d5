package bittrie

// bitAt returns the bit of x at position pos, where pos=0 is the LSB.
func bitAt(x uint64, pos uint8) uint8 {
	return uint8((x >> pos) & 1)
}

// levelBit returns the bit position encoded by nodes at depth in a trie of
// the given width. The root (depth 0) encodes the MSB.
func levelBit(width, depth uint8) uint8 {
	return width - 1 - depth
}

// lowerBits returns a mask of every bit strictly below pos.
func lowerBits(pos uint8) uint64 {
	return (uint64(1) << pos) - 1
}

// WidthMask returns the mask selecting the low width bits of a uint64.
func WidthMask(width uint8) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Capacity returns the number of distinct values representable in width bits,
// saturating at MaxUint64 for width 64.
func Capacity(width uint8) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return uint64(1) << width
}

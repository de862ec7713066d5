package bittrie

import "math"

// NodeCountMax returns the maximum number of arena nodes a trie of the given
// width holds after valueCount distinct values have been added: the root plus
// at most width new nodes per value. The result saturates at MaxUint64.
func NodeCountMax(valueCount uint64, width uint8) uint64 {
	if valueCount == 0 || width == 0 {
		return 1
	}
	if valueCount > (math.MaxUint64-1)/uint64(width) {
		return math.MaxUint64
	}
	return 1 + valueCount*uint64(width)
}

// CheckNodeCount checks whether nodeCount nodes can be addressed by a Ref.
func CheckNodeCount(nodeCount uint64) error {
	if nodeCount >= uint64(NoRef) {
		return ErrNodeCountOverflow
	}
	return nil
}

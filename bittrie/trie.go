package bittrie

import "fmt"

// Trie is a set of width-bit unsigned integers supporting mex allocation and
// an O(1) XOR of every member.
//
// A Trie is not safe for concurrent use. Allocate in particular reads the mex
// and then inserts it; callers sharing a Trie must hold one lock across every
// method call.
type Trie struct {
	width     uint8
	valueMask uint64

	nodes []node
	count uint64
}

// New returns an empty trie over width-bit values.
func New(width uint8) (*Trie, error) {
	if width == 0 || width > MaxWidth {
		return nil, fmt.Errorf("%w: width=%d", ErrInvalidWidth, width)
	}
	t := &Trie{
		width:     width,
		valueMask: WidthMask(width),
	}
	t.nodes = append(t.nodes, newNode(NoRef))
	return t, nil
}

// Width returns the bit width fixed at construction.
func (t *Trie) Width() uint8 { return t.width }

// Len returns the number of values present.
func (t *Trie) Len() uint64 { return t.count }

// Capacity returns the number of representable values (see Capacity).
func (t *Trie) Capacity() uint64 { return Capacity(t.width) }

// Full reports whether every representable value is present.
func (t *Trie) Full() bool { return t.nodes[rootRef].full }

// NodeCount returns the number of arena nodes, including the root.
func (t *Trie) NodeCount() int { return len(t.nodes) }

// Mex returns the smallest value not present.
//
// Returns ErrFull if every representable value is present.
func (t *Trie) Mex() (uint64, error) {
	if t.nodes[rootRef].full {
		return 0, ErrFull
	}

	var result uint64
	cur := rootRef
	for depth := uint8(0); depth < t.width; depth++ {
		left := t.child(cur, depth, 0)
		if left == NoRef {
			// Nothing below here; the remaining bits are zero.
			return result, nil
		}

		var dir uint8
		if t.nodes[left].full {
			dir = 1
			result |= uint64(1) << levelBit(t.width, depth)
		}

		next := t.child(cur, depth, dir)
		if next == NoRef {
			return result, nil
		}
		cur = next
	}
	return result, nil
}

// Add inserts value, truncated to the trie width.
//
// Returns ErrDuplicateValue if value is already present, in which case the
// set is unchanged.
func (t *Trie) Add(value uint64) error {
	value &= t.valueMask

	// A single descent creates at most width nodes.
	if err := CheckNodeCount(uint64(len(t.nodes)) + uint64(t.width)); err != nil {
		return err
	}

	// A present value has every node on its path, so the descent below
	// creates nothing when it fails.
	cur := rootRef
	for depth := uint8(0); depth < t.width; depth++ {
		cur = t.childOrCreate(cur, depth, bitAt(value, levelBit(t.width, depth)))
	}
	if t.nodes[cur].full {
		return fmt.Errorf("%w: value=%d", ErrDuplicateValue, value)
	}

	t.markFull(cur)
	t.count++
	return nil
}

// Allocate inserts the current mex and returns it.
func (t *Trie) Allocate() (uint64, error) {
	v, err := t.Mex()
	if err != nil {
		return 0, err
	}
	if err := t.Add(v); err != nil {
		return 0, err
	}
	return v, nil
}

// XORAll replaces every member s with s^key. key is truncated to the trie
// width. The structural change is deferred to later traversals.
func (t *Trie) XORAll(key uint64) {
	key &= t.valueMask
	if key == 0 {
		return
	}
	t.applyXOR(key)
}

// Contains reports whether value, truncated to the trie width, is present.
func (t *Trie) Contains(value uint64) bool {
	value &= t.valueMask

	cur := rootRef
	for depth := uint8(0); depth < t.width; depth++ {
		if t.nodes[cur].full {
			return true
		}
		cur = t.child(cur, depth, bitAt(value, levelBit(t.width, depth)))
		if cur == NoRef {
			return false
		}
	}
	return t.nodes[cur].full
}

package bittrie

import "fmt"

// node is one arena record. A node at depth d stands for every value whose
// top d bits spell the path taken from the root.
type node struct {
	children [2]Ref
	parent   Ref

	// mask is the XOR not yet applied to this subtree, held in absolute bit
	// positions. Leaves never carry a mask.
	mask uint64
	full bool
}

func newNode(parent Ref) node {
	return node{children: [2]Ref{NoRef, NoRef}, parent: parent}
}

func checkChildIndex(i uint8) {
	if i > 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidChildIndex, i))
	}
}

// resolve applies the pending mask of the interior node ref, which sits at
// depth.
//
// It MUST run before the children of ref are read. When the mask bit for this
// level is set the children are swapped. The bits below this level are then
// merged into each existing child and the node's own mask is cleared.
// Fullness is never changed.
func (t *Trie) resolve(ref Ref, depth uint8) {
	n := &t.nodes[ref]
	if n.mask == 0 {
		return
	}
	pos := levelBit(t.width, depth)
	if bitAt(n.mask, pos) == 1 {
		n.children[0], n.children[1] = n.children[1], n.children[0]
	}
	if rest := n.mask & lowerBits(pos); rest != 0 {
		for _, c := range n.children {
			if c != NoRef {
				t.nodes[c].mask ^= rest
			}
		}
	}
	n.mask = 0
}

// child resolves ref and returns its child i, or NoRef.
func (t *Trie) child(ref Ref, depth uint8, i uint8) Ref {
	checkChildIndex(i)
	t.resolve(ref, depth)
	return t.nodes[ref].children[i]
}

// childOrCreate resolves ref and returns its child i, appending a new node to
// the arena if the child is absent. The caller guarantees arena headroom.
func (t *Trie) childOrCreate(ref Ref, depth uint8, i uint8) Ref {
	checkChildIndex(i)
	t.resolve(ref, depth)
	if c := t.nodes[ref].children[i]; c != NoRef {
		return c
	}
	c := Ref(len(t.nodes))
	t.nodes = append(t.nodes, newNode(ref))
	t.nodes[ref].children[i] = c
	return c
}

func (t *Trie) isFull(ref Ref) bool {
	return ref != NoRef && t.nodes[ref].full
}

// markFull marks the leaf at ref full and walks the parent refs upward,
// recomputing each ancestor from both of its children. The walk stops at the
// root or at the first ancestor whose fullness does not change.
func (t *Trie) markFull(ref Ref) {
	t.nodes[ref].full = true
	for p := t.nodes[ref].parent; p != NoRef; p = t.nodes[p].parent {
		n := &t.nodes[p]
		full := t.isFull(n.children[0]) && t.isFull(n.children[1])
		if full == n.full {
			return
		}
		n.full = full
	}
}

// applyXOR merges value into the root mask and pushes it one level down, so
// the root never holds a pending mask between calls.
func (t *Trie) applyXOR(value uint64) {
	t.nodes[rootRef].mask ^= value
	t.resolve(rootRef, 0)
}

package bittrie

type walkFrame struct {
	ref    Ref
	depth  uint8
	prefix uint64
}

// Walk calls fn for every present value in ascending order, stopping early if
// fn returns false. Pending masks on the visited nodes are resolved. fn must
// not modify the trie.
func (t *Trie) Walk(fn func(value uint64) bool) {
	stack := make([]walkFrame, 1, int(t.width)+1)
	stack[0] = walkFrame{ref: rootRef}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth == t.width {
			if t.nodes[f.ref].full && !fn(f.prefix) {
				return
			}
			continue
		}

		t.resolve(f.ref, f.depth)
		pos := levelBit(t.width, f.depth)
		children := t.nodes[f.ref].children

		// Push right first so the left subtree is visited first.
		if c := children[1]; c != NoRef {
			stack = append(stack, walkFrame{ref: c, depth: f.depth + 1, prefix: f.prefix | uint64(1)<<pos})
		}
		if c := children[0]; c != NoRef {
			stack = append(stack, walkFrame{ref: c, depth: f.depth + 1, prefix: f.prefix})
		}
	}
}

// Values returns every present value in ascending order.
func (t *Trie) Values() []uint64 {
	out := make([]uint64, 0, t.count)
	t.Walk(func(v uint64) bool {
		out = append(out, v)
		return true
	})
	return out
}

package mextesting

import "sort"

// Model is a plain map backed reference set that trie and registry tests
// check their results against.
type Model map[uint64]struct{}

func NewModel(values ...uint64) Model {
	m := make(Model, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func (m Model) Has(v uint64) bool {
	_, ok := m[v]
	return ok
}

func (m Model) Add(v uint64) { m[v] = struct{}{} }

// Mex returns the smallest value absent from m.
func (m Model) Mex() uint64 {
	var v uint64
	for m.Has(v) {
		v++
	}
	return v
}

// XOR returns a new model holding v^key for every member v.
func (m Model) XOR(key uint64) Model {
	out := make(Model, len(m))
	for v := range m {
		out[v^key] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order.
func (m Model) Sorted() []uint64 {
	out := make([]uint64, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package mextesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModel(t *testing.T) {
	m := NewModel(1, 3)
	require.Equal(t, uint64(0), m.Mex())

	m = m.XOR(1)
	require.Equal(t, []uint64{0, 2}, m.Sorted())
	require.Equal(t, uint64(1), m.Mex())

	m.Add(1)
	m = m.XOR(1)
	require.Equal(t, []uint64{0, 1, 3}, m.Sorted())
	require.Equal(t, uint64(2), m.Mex())
	require.True(t, m.Has(3))
	require.False(t, m.Has(2))
}

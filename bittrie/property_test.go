package bittrie

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/forestrie/go-mextrie/mextesting"
	"github.com/stretchr/testify/require"
)

// For every possible mex position, fill every value below it and a random
// half of the values above it.
func TestMexAllPositions8(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for mex := uint64(0); mex < 256; mex++ {
		tr := newTrie(t, 8)
		for i := uint64(0); i < 256; i++ {
			if i < mex || (i > mex && rng.Intn(2) == 0) {
				require.NoError(t, tr.Add(i))
			}
		}
		id, err := tr.Allocate()
		require.NoError(t, err)
		require.Equal(t, mex, id)
	}
}

func TestMexSampledPositions16(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	for mex := uint64(0); mex < 65536; mex += uint64(1 + rng.Intn(4000)) {
		tr := newTrie(t, 16)
		for i := uint64(0); i < 65536; i++ {
			if i < mex || (i > mex && rng.Intn(10) == 0) {
				require.NoError(t, tr.Add(i))
			}
		}
		id, err := tr.Allocate()
		require.NoError(t, err)
		require.Equal(t, mex, id)
	}
}

func TestMexAfterXORAllPositions8(t *testing.T) {
	rng := rand.New(rand.NewSource(81))
	for mex := uint64(0); mex < 256; mex++ {
		tr := newTrie(t, 8)
		model := mextesting.NewModel()
		for i := uint64(0); i < 256; i++ {
			if i < mex || (i > mex && rng.Intn(2) == 0) {
				require.NoError(t, tr.Add(i))
				model.Add(i)
			}
		}

		key := uint64(rng.Intn(256))
		tr.XORAll(key)
		model = model.XOR(key)

		id, err := tr.Allocate()
		require.NoError(t, err)
		require.Equal(t, model.Mex(), id)
	}
}

// Random interleavings of add, allocate and xor must agree with the model
// after every step.
func TestRandomOperationsMatchModel(t *testing.T) {
	tests := []struct {
		name  string
		width uint8
		ops   int
		seed  int64
	}{
		{"width 4", 4, 500, 4},
		{"width 8", 8, 3000, 8},
		{"width 16", 16, 5000, 16},
		{"width 64", 64, 3000, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(tt.seed))
			mask := WidthMask(tt.width)
			capacity := Capacity(tt.width)

			// Keep values near zero so mex is exercised on wide tries too.
			pick := func() uint64 {
				if rng.Intn(4) == 0 {
					return rng.Uint64() & mask
				}
				return uint64(rng.Intn(64)) & mask
			}

			tr := newTrie(t, tt.width)
			model := mextesting.NewModel()

			for i := 0; i < tt.ops; i++ {
				switch rng.Intn(3) {
				case 0:
					v := pick()
					err := tr.Add(v)
					if model.Has(v) {
						require.ErrorIs(t, err, ErrDuplicateValue)
					} else {
						require.NoError(t, err)
						model.Add(v)
					}
				case 1:
					id, err := tr.Allocate()
					if uint64(len(model)) == capacity {
						require.ErrorIs(t, err, ErrFull)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, model.Mex(), id)
					model.Add(id)
				case 2:
					key := pick()
					tr.XORAll(key)
					model = model.XOR(key)
				}

				require.Equal(t, uint64(len(model)), tr.Len())
				require.Equal(t, uint64(len(model)) == capacity, tr.Full())
				if !tr.Full() {
					mex, err := tr.Mex()
					require.NoError(t, err)
					require.Equal(t, model.Mex(), mex)
				}
				if i%50 == 0 {
					require.Equal(t, model.Sorted(), tr.Values())
				}
			}

			require.Equal(t, model.Sorted(), tr.Values())
			for v := range model {
				require.True(t, tr.Contains(v))
			}
			require.LessOrEqual(t, uint64(tr.NodeCount()), NodeCountMax(tr.Len(), tr.Width()))
		})
	}
}

func TestXORSequenceEquivalentToFoldedKey(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for round := 0; round < 100; round++ {
		a := newTrie(t, 16)
		b := newTrie(t, 16)
		for i := 0; i < 200; i++ {
			v := uint64(rng.Intn(1024))
			errA := a.Add(v)
			errB := b.Add(v)
			require.Equal(t, errors.Is(errA, ErrDuplicateValue), errors.Is(errB, ErrDuplicateValue))
		}

		var folded uint64
		for i := 0; i < 1+rng.Intn(5); i++ {
			k := uint64(rng.Intn(65536))
			a.XORAll(k)
			folded ^= k
		}
		b.XORAll(folded)

		for i := 0; i < 10; i++ {
			ma, err := a.Allocate()
			require.NoError(t, err)
			mb, err := b.Allocate()
			require.NoError(t, err)
			require.Equal(t, mb, ma)
		}
		require.Equal(t, b.Values(), a.Values())
	}
}

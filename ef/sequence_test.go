package ef

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEFSequenceRoundTrip_ExampleFromSpec(t *testing.T) {
	values := []uint64{3, 7, 7, 9, 13}
	seq := BuildEFSequence(values)

	require.Equal(t, len(values), seq.Len())
	for i, v := range values {
		require.Equal(t, v, seq.Access(i), "mismatch at index %d", i)
	}
}

func TestEFSequenceDegenerateSingleton(t *testing.T) {
	seq := BuildEFSequence([]uint64{3})
	require.Equal(t, 1, seq.Len())
	require.Equal(t, uint64(3), seq.Access(0))

	seq2 := BuildEFSequence([]uint64{1 << 40})
	require.Equal(t, uint64(1<<40), seq2.Access(0))
}

func TestEFSequenceRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(200)
		values := make([]uint64, n)
		cur := uint64(3 + rng.Intn(5))
		for i := range values {
			cur += uint64(rng.Intn(50))
			values[i] = cur
		}

		seq := BuildEFSequence(values)
		require.Equal(t, n, seq.Len())
		for i, v := range values {
			require.Equalf(t, v, seq.Access(i), "trial %d index %d", trial, i)
		}
	}
}

func TestEFSequenceDuplicateValues(t *testing.T) {
	values := []uint64{5, 5, 5, 5, 5, 5, 5, 5}
	seq := BuildEFSequence(values)
	for i := range values {
		require.Equal(t, uint64(5), seq.Access(i))
	}
}

func TestEFSequencePanicsOnNonMonotone(t *testing.T) {
	require.Panics(t, func() {
		BuildEFSequence([]uint64{5, 4, 6})
	})
}

func TestEFSequencePanicsBelowFloor(t *testing.T) {
	require.Panics(t, func() {
		BuildEFSequence([]uint64{0, 1, 2})
	})
}

func TestEFSequencePanicsOnAccessOutOfRange(t *testing.T) {
	seq := BuildEFSequence([]uint64{3, 4, 5})
	require.Panics(t, func() {
		seq.Access(3)
	})
	require.Panics(t, func() {
		seq.Access(-1)
	})
}

// TestPrefixSumInverse exercises the prefix-sum trick property from spec.md
// §8: EF.access(i) - EF.access(i-1) == A[i] for i>=1, EF.access(0) == A[0].
func TestPrefixSumInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := make([]uint64, 40)
	for i := range a {
		a[i] = 3 + uint64(rng.Intn(1000))
	}

	seq := BuildEFSequence(prefixSum(a))
	require.Equal(t, a[0], seq.Access(0))
	for i := 1; i < len(a); i++ {
		require.Equal(t, a[i], seq.Access(i)-seq.Access(i-1))
	}
}

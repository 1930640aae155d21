package ef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEFHashMapLookupAndRank(t *testing.T) {
	keys := []uint64{10, 11, 12, 13, 14}
	handles := []uint64{100, 101, 102, 103, 104}
	freq := map[uint64]uint64{100: 5, 101: 50, 102: 1, 103: 30, 104: 10}

	m := BuildEFHashMap(keys, handles, func(h uint64) uint64 { return freq[h] })
	require.Equal(t, 5, m.Len())

	for i, k := range keys {
		got, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, handles[i], got)
	}

	_, ok := m.Get(999)
	require.False(t, ok)

	// Rank order should be descending by frequency: 101(50),103(30),104(10),100(5),102(1).
	wantOrder := []uint64{101, 103, 104, 100, 102}
	var prevFreq uint64 = ^uint64(0)
	for r := 0; r < m.Len(); r++ {
		got, ok := m.GetRank(r)
		require.True(t, ok)
		require.Equal(t, wantOrder[r], got)
		require.LessOrEqual(t, freq[got], prevFreq)
		prevFreq = freq[got]
	}
}

func TestEFHashMapCollisionProbing(t *testing.T) {
	// All keys collide to the same initial bucket (key_id mod N == 0).
	n := uint64(4)
	keys := []uint64{4, 8, 12, 16}
	handles := []uint64{40, 80, 120, 160}
	freq := map[uint64]uint64{40: 1, 80: 2, 120: 3, 160: 4}

	m := BuildEFHashMap(keys, handles, func(h uint64) uint64 { return freq[h] })
	require.Equal(t, int(n), m.Len())

	for i, k := range keys {
		got, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, handles[i], got)
	}
}

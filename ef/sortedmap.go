package ef

import "ngramtrie/errutil"

// EFSortedMap is the frequency-sorted, fixed-order child block a trie node
// uses for its top-K successors. Keys and handles are stored via the
// prefix-sum trick (Build algorithm, SPEC_FULL §4.3 / spec.md §4.3) in their
// given input order — the caller is responsible for having already sorted
// that order by descending frequency; EFSortedMap only encodes it.
type EFSortedMap struct {
	n     int
	keys  *EFSequence
	vals  *EFSequence
}

// BuildEFSortedMap encodes keys/handles, both already ordered by descending
// frequency. len(keys) must be >= 1.
func BuildEFSortedMap(keys, handles []uint64) *EFSortedMap {
	n := len(keys)
	errutil.BugOn(n == 0, "EFSortedMap: build called with 0 entries")
	errutil.BugOn(len(handles) != n, "EFSortedMap: keys/handles length mismatch")

	keyPS := prefixSum(keys)
	valPS := prefixSum(handles)

	return &EFSortedMap{
		n:    n,
		keys: BuildEFSequence(keyPS),
		vals: BuildEFSequence(valPS),
	}
}

// Len returns the number of entries.
func (m *EFSortedMap) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// ByteSize returns a diagnostic estimate of the resident size in bytes.
func (m *EFSortedMap) ByteSize() int {
	if m == nil {
		return 0
	}
	return m.keys.ByteSize() + m.vals.ByteSize()
}

func prefixSumInverse(seq *EFSequence, i int) uint64 {
	if i == 0 {
		return seq.Access(0)
	}
	return seq.Access(i) - seq.Access(i-1)
}

// Get performs an O(N) linear scan for keyID, decoding each entry via the EF
// difference trick; N is at most K+1 here so this stays cheap.
func (m *EFSortedMap) Get(keyID uint64) (uint64, bool) {
	if m == nil {
		return 0, false
	}
	for i := 0; i < m.n; i++ {
		if prefixSumInverse(m.keys, i) == keyID {
			return prefixSumInverse(m.vals, i), true
		}
	}
	return 0, false
}

// GetRank returns the r-th entry in descending-frequency order, O(1).
func (m *EFSortedMap) GetRank(r int) (uint64, bool) {
	if m == nil || r < 0 || r >= m.n {
		return 0, false
	}
	return prefixSumInverse(m.vals, r), true
}

// prefixSum returns P where P[i] = values[0] + ... + values[i].
func prefixSum(values []uint64) []uint64 {
	out := make([]uint64, len(values))
	var running uint64
	for i, v := range values {
		running += v
		out[i] = running
	}
	return out
}

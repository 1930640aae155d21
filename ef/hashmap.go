package ef

import (
	"ngramtrie/errutil"

	"golang.org/x/exp/slices"
)

// EFHashMap is the open-addressed, EF-encoded hash block a trie node uses
// for the successors that don't fit in its top-K block. The hash function is
// identity mod N (spec.md §4.2: "no better hash is required because key_id
// is already a dense small integer"), load factor is exactly 1.0, and probing
// is linear with step 1.
//
// Beyond the two EF sequences the source keeps (keys, handles), this holds a
// third: rankOrder, a monotone-encoded permutation of slot indices sorted by
// descending referenced-node frequency. It resolves Open Question 9a from
// spec.md's Design Notes: GetRank decodes rankOrder directly instead of
// decoding and sorting all N handles on every call.
type EFHashMap struct {
	n         int
	keys      *EFSequence
	vals      *EFSequence
	rankOrder *EFSequence
}

// BuildEFHashMap builds a hash block over parallel keys/handles slices (both
// length N >= 2, per spec.md §4.2's invariant — the trie build only ever
// creates a rest block when it will hold at least two entries, thanks to the
// "+1 slack" rule in §4.4). freqOf resolves a handle to the frequency of the
// node it references, used only to build the rank directory.
func BuildEFHashMap(keys, handles []uint64, freqOf func(handle uint64) uint64) *EFHashMap {
	n := len(keys)
	errutil.BugOn(n < 2, "EFHashMap: N must be >= 2, got %d", n)
	errutil.BugOn(len(handles) != n, "EFHashMap: keys/handles length mismatch")

	slotKey := make([]uint64, n)
	slotHandle := make([]uint64, n)
	occupied := make([]bool, n)

	for i := 0; i < n; i++ {
		h := keys[i] % uint64(n)
		for j := uint64(0); ; j++ {
			idx := (h + j) % uint64(n)
			if !occupied[idx] {
				slotKey[idx] = keys[i]
				slotHandle[idx] = handles[i]
				occupied[idx] = true
				break
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) bool {
		return freqOf(slotHandle[a]) > freqOf(slotHandle[b])
	})
	rankVals := make([]uint64, n)
	for r, slot := range order {
		rankVals[r] = uint64(slot) + 3
	}

	return &EFHashMap{
		n:         n,
		keys:      BuildEFSequence(prefixSum(slotKey)),
		vals:      BuildEFSequence(prefixSum(slotHandle)),
		rankOrder: BuildEFSequence(prefixSum(rankVals)),
	}
}

// Len returns N.
func (m *EFHashMap) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// ByteSize returns a diagnostic estimate of the resident size in bytes.
func (m *EFHashMap) ByteSize() int {
	if m == nil {
		return 0
	}
	return m.keys.ByteSize() + m.vals.ByteSize() + m.rankOrder.ByteSize()
}

// Get resolves keyID via linear probing, returning the stored handle.
func (m *EFHashMap) Get(keyID uint64) (uint64, bool) {
	if m == nil {
		return 0, false
	}
	h := keyID % uint64(m.n)
	for j := uint64(0); j < uint64(m.n); j++ {
		idx := (h + j) % uint64(m.n)
		if prefixSumInverse(m.keys, int(idx)) == keyID {
			return prefixSumInverse(m.vals, int(idx)), true
		}
	}
	return 0, false
}

// GetRank returns the r-th handle in descending-frequency order in O(1),
// via the rank directory rather than a per-call sort of all N handles.
func (m *EFHashMap) GetRank(r int) (uint64, bool) {
	if m == nil || r < 0 || r >= m.n {
		return 0, false
	}
	slot := int(prefixSumInverse(m.rankOrder, r)) - 3
	return prefixSumInverse(m.vals, slot), true
}

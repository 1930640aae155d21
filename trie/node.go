package trie

import (
	"ngramtrie/ef"
	"ngramtrie/errutil"

	"golang.org/x/exp/slices"
)

// buildNode allocates a TrieNode in the arena for (gramID, frequency,
// children), following the Build algorithm of spec.md §4.4: a leaf (no
// children) stores neither block; otherwise children are sorted by
// descending frequency and split into a top-K EFSortedMap plus, when more
// than K+1 children remain, an EFHashMap "rest" block for the remainder.
// The "+1 slack" (k+1 >= len(children) keeps everything in topK) avoids
// building a two-entry-minimum EFHashMap to hold a single leftover child.
func buildNode(ar *arena, gramID, frequency uint64, k int, children []handle) handle {
	if len(children) == 0 {
		return ar.alloc(nodeRecord{gramID: gramID, frequency: frequency})
	}

	sorted := append([]handle(nil), children...)
	slices.SortFunc(sorted, func(a, b handle) bool {
		return ar.get(a).frequency > ar.get(b).frequency
	})

	// spec.md §8's frequency invariant (a node's frequency equals the sum
	// of its children's) holds by construction here, since the caller
	// always passes the aggregate it accumulated while gathering children;
	// assert it rather than silently trusting that bookkeeping forever.
	var childSum uint64
	for _, h := range sorted {
		childSum += ar.get(h).frequency
	}
	errutil.BugOnNotEq(frequency, childSum)

	var topK *ef.EFSortedMap
	var rest *ef.EFHashMap
	if k+1 >= len(sorted) {
		topK = buildSortedMap(ar, sorted)
	} else {
		topK = buildSortedMap(ar, sorted[:k])
		rest = buildHashMap(ar, sorted[k:])
	}

	return ar.alloc(nodeRecord{gramID: gramID, frequency: frequency, topK: topK, rest: rest})
}

func buildSortedMap(ar *arena, hs []handle) *ef.EFSortedMap {
	keys := make([]uint64, len(hs))
	vals := make([]uint64, len(hs))
	for i, h := range hs {
		keys[i] = ar.get(h).gramID
		vals[i] = encodeHandle(h)
	}
	return ef.BuildEFSortedMap(keys, vals)
}

func buildHashMap(ar *arena, hs []handle) *ef.EFHashMap {
	keys := make([]uint64, len(hs))
	vals := make([]uint64, len(hs))
	for i, h := range hs {
		keys[i] = ar.get(h).gramID
		vals[i] = encodeHandle(h)
	}
	return ef.BuildEFHashMap(keys, vals, func(encoded uint64) uint64 {
		return ar.get(decodeHandle(encoded)).frequency
	})
}

// findSuccessor resolves wordID to a child of the node at h, checking the
// top-K block first and falling back to the rest block.
func findSuccessor(ar *arena, h handle, wordID uint64) (handle, bool) {
	rec := ar.get(h)
	if v, ok := rec.topK.Get(wordID); ok {
		return decodeHandle(v), true
	}
	if v, ok := rec.rest.Get(wordID); ok {
		return decodeHandle(v), true
	}
	return 0, false
}

// nodeMostLikelyNext returns up to n child handles of h in descending
// frequency order, draining the top-K block before the rest block.
func nodeMostLikelyNext(ar *arena, h handle, n int) []handle {
	rec := ar.get(h)
	total := rec.topK.Len() + rec.rest.Len()
	if n > total {
		n = total
	}
	if n <= 0 {
		return nil
	}

	result := make([]handle, 0, n)
	for i := 0; i < n && i < rec.topK.Len(); i++ {
		v, _ := rec.topK.GetRank(i)
		result = append(result, decodeHandle(v))
	}
	for j := 0; len(result) < n; j++ {
		v, _ := rec.rest.GetRank(j)
		result = append(result, decodeHandle(v))
	}
	return result
}

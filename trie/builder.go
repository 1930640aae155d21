package trie

import (
	"fmt"

	"ngramtrie/corpus"
	"ngramtrie/utils"
	"ngramtrie/vocab"
)

// Build streams a sorted n-gram corpus into a Trie, following the
// bottom-up single-pass construction of original_source/trie.h's Trie
// constructor (spec.md §4.5): only two consecutive records are ever held in
// memory, plus one pending-node buffer per depth.
//
// r must yield records in lexicographically ascending token order (the
// corpus format's documented precondition — Build does not sort). l is the
// gram length (>= 2; see the source's own "only works past bigrams"
// restriction, generalized here rather than left trigram-specific) and k is
// the top-K child count every internal node keeps inline.
func Build(r *corpus.Reader, l, k int, v *vocab.Vocabulary) (*Trie, error) {
	if l < 2 {
		return nil, fmt.Errorf("trie: gram length must be >= 2, got %d", l)
	}
	if k < 2 {
		return nil, fmt.Errorf("trie: k must be >= 2, got %d", k)
	}

	ar := &arena{}
	levelNodes := make([][]handle, l)  // depths 0..l-1
	levelCounts := make([]uint64, l-1) // depths 0..l-2
	digest := utils.NewCorpusDigest()

	var prev corpus.Record
	havePrev := false

	for r.Next() {
		cur := r.Value()
		digest.AddRecord(cur.Tokens, cur.Count)
		if havePrev {
			s := sharedPrefixLen(prev.Tokens, cur.Tokens, l)
			emitTransition(ar, v, l, k, levelNodes, levelCounts, prev, s)
		}
		prev = cur
		havePrev = true
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	t := &Trie{arena: ar, vocab: v, k: k, l: l, digest: digest.Sum64()}
	if !havePrev {
		return t, nil
	}

	// Force-close every pending level as if the next (nonexistent) line
	// shared no prefix at all, mirroring the source's inFile.eof() branch.
	emitTransition(ar, v, l, k, levelNodes, levelCounts, prev, 0)

	roots := levelNodes[0]
	switch len(roots) {
	case 0:
		// empty corpus already returned above; unreachable otherwise
	case 1:
		h := roots[0]
		t.singleRoot = &rootEntry{gramID: ar.get(h).gramID, h: h}
	default:
		t.rootMap = buildHashMap(ar, roots)
	}
	return t, nil
}

// sharedPrefixLen returns the length of the common prefix of a and b over
// positions [0, l-2] — the last token position never participates, since it
// is always the leaf and never shared between distinct lines.
func sharedPrefixLen(a, b []string, l int) int {
	s := 0
	for i := 0; i < l-1; i++ {
		if a[i] != b[i] {
			break
		}
		s++
	}
	return s
}

// emitTransition closes out whatever depths the shared-prefix length s says
// have finished accumulating children, using prev as the record that just
// left the pending window. s == 0 forces a full close including the root,
// used both for a genuine root-level divergence and for end-of-input.
func emitTransition(ar *arena, v *vocab.Vocabulary, l, k int, levelNodes [][]handle, levelCounts []uint64, prev corpus.Record, s int) {
	// Leaf emission: unconditional. Every line contributes exactly one leaf
	// for its last token, since two consecutive sorted lines are never
	// identical n-grams.
	leafID := v.MustID(prev.Tokens[l-1])
	leafHandle := buildNode(ar, leafID, prev.Count, k, nil)
	levelNodes[l-1] = append(levelNodes[l-1], leafHandle)
	levelCounts[l-2] += prev.Count

	// Intermediate emissions, deepest first. i counts distance from the
	// leaf; d = l-i is the depth of the node this iteration may close.
	for i := 2; i <= l-1; i++ {
		d := l - i
		if s > d {
			continue
		}
		gramID := v.MustID(prev.Tokens[d])
		freq := levelCounts[d]
		children := levelNodes[d+1]
		h := buildNode(ar, gramID, freq, k, children)
		levelNodes[d] = append(levelNodes[d], h)
		levelCounts[d-1] += freq
		levelNodes[d+1] = nil
		levelCounts[d] = 0
	}

	if s == 0 {
		gramID := v.MustID(prev.Tokens[0])
		freq := levelCounts[0]
		children := levelNodes[1]
		h := buildNode(ar, gramID, freq, k, children)
		levelNodes[0] = append(levelNodes[0], h)
		levelCounts[0] = 0
		levelNodes[1] = nil
	}
}

// Package trie implements the n-gram index: a bottom-up-built tree of
// TrieNodes, each node's successors stored in Elias-Fano encoded child
// blocks (package ef), addressed through a dense node arena instead of raw
// pointers. See builder.go for construction and node.go for the per-node
// child-block layout.
package trie

import (
	"ngramtrie/ef"
	"ngramtrie/utils"
	"ngramtrie/vocab"
)

// rootEntry is the degenerate one-root case: building an EFHashMap requires
// N >= 2 (ef.EFHashMap's own invariant), so a corpus whose every n-gram
// shares the same first token stores its single root directly rather than
// forcing an undersized hash block into existence. This extends the same
// N==1 degenerate handling spec.md §4.1 already gives EFSequence up one
// level, to the root map spec.md §4.5 otherwise always builds as a flat
// EFHashMap.
type rootEntry struct {
	gramID uint64
	h      handle
}

// Trie is a frequency-weighted n-gram index over a fixed gram length l,
// built once by Build and read thereafter by FrequencyCount and
// MostLikelyNext. It owns no raw pointers: every reference between nodes is
// a handle into arena.
type Trie struct {
	arena *arena
	vocab *vocab.Vocabulary
	k     int
	l     int

	rootMap    *ef.EFHashMap
	singleRoot *rootEntry
	digest     uint64
}

// Digest returns a content hash of the corpus this trie was built from, for
// diagnostic logging only (spec.md §5: "not load-bearing").
func (t *Trie) Digest() uint64 {
	return t.digest
}

func (t *Trie) rootHandle(word string) (handle, bool) {
	id, ok := t.vocab.ID(word)
	if !ok {
		return 0, false
	}
	if t.rootMap != nil {
		v, ok := t.rootMap.Get(id)
		if !ok {
			return 0, false
		}
		return decodeHandle(v), true
	}
	if t.singleRoot != nil && t.singleRoot.gramID == id {
		return t.singleRoot.h, true
	}
	return 0, false
}

// walk resolves tokens to the handle of the deepest matching node, or false
// on the first out-of-vocabulary word or missing successor.
func (t *Trie) walk(tokens []string) (handle, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	h, ok := t.rootHandle(tokens[0])
	if !ok {
		return 0, false
	}
	for _, tok := range tokens[1:] {
		id, ok := t.vocab.ID(tok)
		if !ok {
			return 0, false
		}
		h, ok = findSuccessor(t.arena, h, id)
		if !ok {
			return 0, false
		}
	}
	return h, true
}

// FrequencyCount returns how many times the token sequence occurred in the
// training corpus, or 0 if any prefix is absent (spec.md §4.5 /
// UnknownWord, ShortSequence edge cases).
func (t *Trie) FrequencyCount(tokens []string) uint64 {
	h, ok := t.walk(tokens)
	if !ok {
		return 0
	}
	return t.arena.get(h).frequency
}

// MostLikelyNext returns up to n words most likely to follow tokens, in
// descending frequency order. Returns nil if tokens is absent, is
// out-of-vocabulary, or the matched node has no successors.
func (t *Trie) MostLikelyNext(tokens []string, n int) []string {
	h, ok := t.walk(tokens)
	if !ok || n <= 0 {
		return nil
	}
	handles := nodeMostLikelyNext(t.arena, h, n)
	if len(handles) == 0 {
		return nil
	}
	words := make([]string, len(handles))
	for i, hh := range handles {
		rec := t.arena.get(hh)
		w, _ := t.vocab.Word(rec.gramID)
		words[i] = w
	}
	return words
}

// MemReport breaks down the trie's resident size by component, in the
// teacher's hierarchical diagnostic shape (utils.MemReport).
func (t *Trie) MemReport() utils.MemReport {
	rootBytes := t.rootMap.ByteSize()
	return utils.MemReport{
		Name:       "trie",
		TotalBytes: t.arena.ByteSize() + rootBytes,
		Children: []utils.MemReport{
			{Name: "arena", TotalBytes: t.arena.ByteSize()},
			{Name: "roots", TotalBytes: rootBytes},
		},
	}
}

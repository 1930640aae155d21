// Package vocab builds the word <-> dense-ID bijection every EF sequence in
// this module is keyed by. It is a trivial collaborator (spec.md §1): the
// interesting part is the EF trie that consumes its output, not the
// frequency count and sort below, which follows original_source/vocab.h
// directly.
package vocab

import (
	"ngramtrie/corpus"
	"ngramtrie/errutil"
	"ngramtrie/utils"

	"golang.org/x/exp/slices"
)

// idOffset is the minimum vocabulary ID. EF sequences require every encoded
// value to be >= 3 (spec.md §3/§4.1), so the most frequent word gets ID 3
// rather than 0.
const idOffset = 3

// Vocabulary is the frozen word<->ID bijection. IDs are dense, assigned by
// descending corpus frequency: the most frequent word gets ID 3.
type Vocabulary struct {
	wordToID map[string]uint64
	idToWord map[uint64]string
}

// Build scans every record r yields (ignoring counts — only token identity
// and occurrence matter for vocabulary ranking) and assigns dense IDs by
// descending word frequency. The order (and so the IDs) of words with equal
// counts is not defined: entries come from map iteration and the sort is not
// stable.
func Build(r *corpus.Reader, gramLen int) (*Vocabulary, error) {
	counts := make(map[string]uint64)
	for r.Next() {
		rec := r.Value()
		for _, tok := range rec.Tokens {
			counts[tok]++
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	type wordCount struct {
		word  string
		count uint64
	}
	entries := utils.MapEntries(counts, func(w string, c uint64) wordCount {
		return wordCount{word: w, count: c}
	})

	slices.SortFunc(entries, func(a, b wordCount) bool {
		return a.count > b.count
	})

	v := &Vocabulary{
		wordToID: make(map[string]uint64, len(entries)),
		idToWord: make(map[uint64]string, len(entries)),
	}
	for i, e := range entries {
		id := idOffset + uint64(i)
		v.wordToID[e.word] = id
		v.idToWord[id] = e.word
	}
	return v, nil
}

// Size returns the vocabulary size V.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.idToWord)
}

// ID resolves a word to its dense ID. ok is false for an out-of-vocabulary word.
func (v *Vocabulary) ID(word string) (uint64, bool) {
	if v == nil {
		return 0, false
	}
	id, ok := v.wordToID[word]
	return id, ok
}

// Word resolves a dense ID back to its word.
func (v *Vocabulary) Word(id uint64) (string, bool) {
	if v == nil {
		return "", false
	}
	w, ok := v.idToWord[id]
	return w, ok
}

// MustID resolves a word to its ID, halting if the word is out of
// vocabulary. Used internally by the trie builder, which only ever sees
// words the vocabulary pass has already counted.
func (v *Vocabulary) MustID(word string) uint64 {
	id, ok := v.ID(word)
	errutil.BugOn(!ok, "vocab: word %q not found in vocabulary", word)
	return id
}

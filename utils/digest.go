package utils

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// CorpusDigest accumulates a running content hash of the n-gram lines a
// build consumes, for diagnostic logging ("which corpus did this trie come
// from") rather than any correctness purpose. Grounded on the teacher's
// xxh3.New()/Write/Sum64 usage in CharBitString.HashWithSeed.
type CorpusDigest struct {
	h *xxh3.Hasher
}

// NewCorpusDigest returns a fresh digest accumulator.
func NewCorpusDigest() *CorpusDigest {
	return &CorpusDigest{h: xxh3.New()}
}

// AddRecord folds one (tokens, count) record into the digest.
func (d *CorpusDigest) AddRecord(tokens []string, count uint64) {
	for _, tok := range tokens {
		d.h.WriteString(tok)
		d.h.Write([]byte{0})
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], count)
	d.h.Write(buf[:])
}

// Sum64 returns the digest accumulated so far.
func (d *CorpusDigest) Sum64() uint64 {
	return d.h.Sum64()
}

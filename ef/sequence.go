// Package ef implements the Elias–Fano encoded building blocks the n-gram
// trie is built from: EFSequence (a compressed monotone integer sequence
// with O(1) random access), and, in hashmap.go/sortedmap.go, the two child
// block flavors every trie node stores its successors in.
package ef

import (
	"math/bits"

	"ngramtrie/errutil"
	"ngramtrie/utils"

	"github.com/hillbig/rsdic"
)

// EFSequence is an immutable Elias–Fano encoded non-decreasing sequence of
// uint64 values, all >= 3. Access is O(1): the lower bits region is a dense
// bit-packed array (bitpack.go) read in natural index order, and the upper
// bits region is a github.com/hillbig/rsdic.RSDic bit vector whose Select
// gives O(1) access to the unary-coded bucket histogram (see SPEC_FULL §4.1
// for why this replaces the source's O(N) unary scan).
type EFSequence struct {
	n        int
	universe uint64
	lowBits  int
	low      []uint64
	high     *rsdic.RSDic

	single      bool
	singleValue uint64
}

// ceilLog2 returns ceil(log2(n)) for n >= 1, matching the source's
// ceil(log2(x)) used to size both the universe width and the low-bits width.
func ceilLog2(n uint64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(n - 1)
}

// BuildEFSequence encodes a non-decreasing sequence of values, all >= 3.
// N == 0 or a non-monotone input is a programmer error (§7 ProgrammerError):
// it halts rather than returning an error, since it can only happen if a
// caller violates the EF layer's data-shape contract.
func BuildEFSequence(values []uint64) *EFSequence {
	n := len(values)
	errutil.BugOn(n == 0, "EFSequence: build called with N=0")
	errutil.BugOn(values[0] < 3, "EFSequence: values must be >= 3, got %d", values[0])
	for i := 1; i < n; i++ {
		errutil.BugOn(values[i] < values[i-1], "EFSequence: values must be non-decreasing at index %d (%d < %d)", i, values[i], values[i-1])
	}

	if n == 1 {
		seq := &EFSequence{n: 1, universe: values[0], single: true, singleValue: values[0]}
		utils.TrackAlloc(8)
		return seq
	}

	universe := values[n-1]
	m := ceilLog2(universe) + 1

	q := universe / uint64(n)
	lowBits := 0
	if q > 0 {
		lowBits = ceilLog2(q)
	}
	if lowBits > m {
		lowBits = m
	}
	highBits := m - lowBits

	lowVals := make([]uint64, n)
	var lowMask uint64
	if lowBits > 0 {
		lowMask = (uint64(1) << uint(lowBits)) - 1
	}
	for i, v := range values {
		lowVals[i] = v & lowMask
	}
	lowPacked := packBits(lowVals, lowBits)

	numBuckets := uint64(1) << uint(highBits)
	counts := make([]uint64, numBuckets)
	for _, v := range values {
		counts[v>>uint(lowBits)]++
	}

	high := rsdic.New()
	for b := uint64(0); b < numBuckets; b++ {
		high.PushBack(false)
		for j := uint64(0); j < counts[b]; j++ {
			high.PushBack(true)
		}
	}

	seq := &EFSequence{n: n, universe: universe, lowBits: lowBits, low: lowPacked, high: high}
	utils.TrackAlloc(seq.ByteSize())
	return seq
}

// Len returns N.
func (s *EFSequence) Len() int {
	return s.n
}

// Access returns values[i] in O(1). i out of [0,N) is a programmer error.
func (s *EFSequence) Access(i int) uint64 {
	errutil.BugOn(i < 0 || i >= s.n, "EFSequence: access out of range: %d (len %d)", i, s.n)

	if s.single {
		return s.singleValue
	}

	var low uint64
	if s.lowBits > 0 {
		low = unpackBit(s.low, i, s.lowBits)
	}

	p := s.high.Select(uint64(i), true)
	high := p - uint64(i) - 1

	return (high << uint(s.lowBits)) | low
}

// ByteSize returns a diagnostic estimate of the resident size in bytes.
func (s *EFSequence) ByteSize() int {
	if s == nil {
		return 0
	}
	size := len(s.low) * 8
	if s.high != nil {
		size += s.high.AllocSize()
	}
	return size + 32
}

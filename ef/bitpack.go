package ef

// packBits packs values into a dense []uint64 slice, each value using
// exactly bitWidth bits, in natural index order: value i lives at bit offset
// i*bitWidth. Adapted from the teacher's trie/shzft/bitpack.go, which packed
// delta values for the Heavy Z-Fast Trie; here it packs the EFSequence lower
// bits region in the corrected forward-index convention (see SPEC_FULL §4.1
// / Design Notes 9b) rather than the source's reversed layout.
func packBits(values []uint64, bitWidth int) []uint64 {
	if len(values) == 0 {
		return nil
	}
	if bitWidth == 0 {
		return []uint64{}
	}

	totalBits := len(values) * bitWidth
	numWords := (totalBits + 63) / 64
	packed := make([]uint64, numWords)

	for i, val := range values {
		bitPos := i * bitWidth
		wordIdx := bitPos / 64
		bitOffset := uint(bitPos % 64)

		mask := uint64(1<<bitWidth) - 1
		maskedVal := val & mask

		packed[wordIdx] |= maskedVal << bitOffset

		bitsAvailableInWord := 64 - int(bitOffset)
		if bitsAvailableInWord < bitWidth {
			bitsWritten := bitsAvailableInWord
			packed[wordIdx+1] |= maskedVal >> uint(bitsWritten)
		}
	}

	return packed
}

// unpackBit extracts the bitWidth-bit value at the given (natural) index
// from a slice packed by packBits.
func unpackBit(packed []uint64, index int, bitWidth int) uint64 {
	if bitWidth == 0 {
		return 0
	}

	bitPos := index * bitWidth
	wordIdx := bitPos / 64
	bitOffset := uint(bitPos % 64)

	val := packed[wordIdx] >> bitOffset

	bitsAvailableInWord := 64 - int(bitOffset)
	if bitsAvailableInWord < bitWidth {
		bitsRead := bitsAvailableInWord
		nextWordVal := packed[wordIdx+1]
		val |= nextWordVal << uint(bitsRead)
	}

	mask := uint64(1<<bitWidth) - 1
	return val & mask
}

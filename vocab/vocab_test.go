package vocab

import (
	"strings"
	"testing"

	"ngramtrie/corpus"

	"github.com/stretchr/testify/require"
)

func TestBuildAssignsDescendingFrequencyIDs(t *testing.T) {
	// "the" appears 3 times, "cat"/"sat" 2 times each, "ran"/"dog" once each.
	data := "the cat sat\t5\n" +
		"the cat ran\t3\n" +
		"the dog sat\t2\n"

	r := corpus.NewReader(strings.NewReader(data), 3)
	v, err := Build(r, 3)
	require.NoError(t, err)
	require.Equal(t, 5, v.Size())

	theID, ok := v.ID("the")
	require.True(t, ok)
	require.Equal(t, uint64(3), theID) // most frequent word gets the offset ID

	catID, ok := v.ID("cat")
	require.True(t, ok)
	require.Less(t, catID, uint64(3)+uint64(v.Size())) // well-formed dense ID

	word, ok := v.Word(theID)
	require.True(t, ok)
	require.Equal(t, "the", word)

	_, ok = v.ID("xyz")
	require.False(t, ok)
}

func TestBuildEmptyCorpus(t *testing.T) {
	r := corpus.NewReader(strings.NewReader(""), 3)
	v, err := Build(r, 3)
	require.NoError(t, err)
	require.Equal(t, 0, v.Size())
}

func TestIDsAreDenseStartingAtThree(t *testing.T) {
	data := "a b c\t1\na b d\t1\na e f\t1\n"
	r := corpus.NewReader(strings.NewReader(data), 3)
	v, err := Build(r, 3)
	require.NoError(t, err)

	seen := make(map[uint64]bool)
	for id := uint64(3); id < 3+uint64(v.Size()); id++ {
		_, ok := v.Word(id)
		require.True(t, ok, "expected dense id %d to be assigned", id)
		seen[id] = true
	}
	require.Len(t, seen, v.Size())
}

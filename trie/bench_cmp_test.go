package trie

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"ngramtrie/corpus"
	"ngramtrie/vocab"

	iradix "github.com/hashicorp/go-immutable-radix"
)

// generateTrigramCorpus produces a lexicographically sorted synthetic
// trigram corpus of n distinct lines, grounded on the teacher's
// generateBitStringKeys (zfasttrie/bench_cmp_test.go): a fixed-seed RNG
// keeps benchmarks reproducible across runs.
func generateTrigramCorpus(n int) []string {
	r := rand.New(rand.NewSource(42))
	vocabWords := make([]string, 64)
	for i := range vocabWords {
		vocabWords[i] = fmt.Sprintf("w%03d", i)
	}

	set := make(map[string]struct{}, n)
	lines := make([]string, 0, n)
	for len(lines) < n {
		tokens := []string{
			vocabWords[r.Intn(len(vocabWords))],
			vocabWords[r.Intn(len(vocabWords))],
			vocabWords[r.Intn(len(vocabWords))],
		}
		key := strings.Join(tokens, " ")
		if _, dup := set[key]; dup {
			continue
		}
		set[key] = struct{}{}
		lines = append(lines, fmt.Sprintf("%s\t%d", key, r.Intn(1000)+1))
	}
	sort.Strings(lines)
	return lines
}

func setupNgramTrie(b *testing.B, n int) (*Trie, []string) {
	b.Helper()
	b.StopTimer()
	lines := generateTrigramCorpus(n)
	data := strings.Join(lines, "\n") + "\n"

	v, err := vocab.Build(corpus.NewReader(strings.NewReader(data), 3), 3)
	if err != nil {
		b.Fatalf("vocab.Build: %v", err)
	}
	tr, err := Build(corpus.NewReader(strings.NewReader(data), 3), 3, 4, v)
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	b.StartTimer()
	return tr, lines
}

func setupIradixOverSameCorpus(b *testing.B, n int) (*iradix.Tree, []string) {
	b.Helper()
	b.StopTimer()
	lines := generateTrigramCorpus(n)
	r := iradix.New()
	for _, line := range lines {
		tab := strings.LastIndexByte(line, '\t')
		key := []byte(line[:tab])
		r, _, _ = r.Insert(key, line[tab+1:])
	}
	b.StartTimer()
	return r, lines
}

func BenchmarkTrie_FrequencyCount_Hit_10k(b *testing.B) {
	tr, lines := setupNgramTrie(b, 10_000)
	mask := len(lines) - 1
	for i := 0; i < b.N; i++ {
		tokens := strings.Fields(strings.SplitN(lines[i&mask], "\t", 2)[0])
		tr.FrequencyCount(tokens)
	}
}

func Benchmark_iradix_Get_Hit_10k(b *testing.B) {
	r, lines := setupIradixOverSameCorpus(b, 10_000)
	mask := len(lines) - 1
	for i := 0; i < b.N; i++ {
		key := []byte(strings.SplitN(lines[i&mask], "\t", 2)[0])
		r.Get(key)
	}
}

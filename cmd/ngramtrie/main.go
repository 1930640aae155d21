// Command ngramtrie is the CLI collaborator spec.md §6 describes: it builds
// a trie from an n-gram file and then serves interactive queries. It is not
// part of the core index; see ngramtrie/trie for that.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"ngramtrie/corpus"
	"ngramtrie/trie"
	"ngramtrie/utils"
	"ngramtrie/vocab"
)

func main() {
	var (
		file = flag.String("file", "", "path to the n-gram corpus file")
		l    = flag.Int("l", 3, "gram length (number of tokens per line)")
	)
	flag.Parse()

	if *file == "" || *l < 2 {
		fail("usage: %s -file <ngram_file> -l <L> (L >= 2)", os.Args[0])
	}
	path := *file

	v, err := buildVocabulary(path, *l)
	if err != nil {
		fail("building vocabulary: %v", err)
	}

	stdin := bufio.NewReader(os.Stdin)
	k, err := readInt(stdin, "K: ")
	if err != nil {
		fail("reading K: %v", err)
	}

	t, err := buildTrie(path, *l, k, v)
	if err != nil {
		fail("building trie: %v", err)
	}
	fmt.Fprintf(os.Stderr, "corpus digest: %x, tracked bytes: %d\n", t.Digest(), utils.TrackedBytes())
	t.MemReport().Print(0)

	if err := queryLoop(stdin, t); err != nil {
		fail("%v", err)
	}
}

// buildVocabulary makes the first pass over the corpus so that the second
// pass (buildTrie) can resolve every token to a dense ID as it streams.
func buildVocabulary(path string, l int) (*vocab.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return vocab.Build(corpus.NewReader(f, l), l)
}

func buildTrie(path string, l, k int, v *vocab.Vocabulary) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trie.Build(corpus.NewReader(f, l), l, k, v)
}

// queryLoop implements the protocol from spec.md §6: repeatedly read
// (query_kind, optional n, tokens terminated by "e"), emit the result, and
// stop once a mostLikelyNext query is entered with n=0.
func queryLoop(in *bufio.Reader, t *trie.Trie) error {
	for {
		kind, err := readInt(in, "query (0=mostLikelyNext, 1=frequencyCount): ")
		if err != nil {
			return fmt.Errorf("reading query kind: %w", err)
		}

		switch kind {
		case 0:
			n, err := readInt(in, "n: ")
			if err != nil {
				return fmt.Errorf("reading n: %w", err)
			}
			if n == 0 {
				return nil
			}
			tokens, err := readTokens(in)
			if err != nil {
				return fmt.Errorf("reading tokens: %w", err)
			}
			result := t.MostLikelyNext(tokens, n)
			fmt.Println(result)

		case 1:
			tokens, err := readTokens(in)
			if err != nil {
				return fmt.Errorf("reading tokens: %w", err)
			}
			fmt.Println(t.FrequencyCount(tokens))

		default:
			return fmt.Errorf("unknown query kind %d", kind)
		}
	}
}

// readTokens reads whitespace-separated words until the literal sentinel "e".
func readTokens(in *bufio.Reader) ([]string, error) {
	var tokens []string
	for {
		var word string
		if _, err := fmt.Fscan(in, &word); err != nil {
			return nil, err
		}
		if word == "e" {
			return tokens, nil
		}
		tokens = append(tokens, word)
	}
}

func readInt(in *bufio.Reader, prompt string) (int, error) {
	fmt.Print(prompt)
	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

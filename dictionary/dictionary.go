// Package dictionary builds the abbreviation rule dictionary from a corpus
// of full-form strings and a corpus of abbreviation-form strings, grounded
// on the subsequence-enumerating trie.
package dictionary

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/leskin-in/mipt-asj/trie"
)

// Pair is a discovered (full, abbr) row: full is a row from the full-form
// corpus, abbr a row from the abbreviation corpus that occurs in it as a
// subsequence.
type Pair struct {
	Full string
	Abbr string
}

// Build discovers every pair (f, z) with f in fulls, z in abbrs, such that z
// occurs as a character subsequence of f. Nil/empty entries in either input
// are skipped. An empty abbreviation corpus after filtering is a fatal
// error. An empty full corpus is not an error: it yields an empty,
// deduplicated result.
func Build(fulls, abbrs []string) ([]Pair, error) {
	return BuildInterruptible(fulls, abbrs, nil)
}

// BuildInterruptible is Build, checking interrupt between full-form rows
// (the "top-level rows" of dictionary construction) and returning early
// with a descriptive error if it fires. A nil interrupt behaves exactly
// like Build.
func BuildInterruptible(fulls, abbrs []string, interrupt <-chan struct{}) ([]Pair, error) {
	t := trie.New()
	abbrCount := 0
	for _, z := range abbrs {
		if z == "" {
			continue
		}
		t.Insert(z, z)
		abbrCount++
	}
	if abbrCount == 0 {
		return nil, fmt.Errorf("dictionary: no abbreviations found in given input")
	}

	if len(fulls) == 0 {
		slog.Warn("dictionary: no full-form rows given")
		return nil, nil
	}

	var pairs []Pair
	for _, f := range fulls {
		select {
		case <-interrupt:
			return nil, fmt.Errorf("dictionary: interrupted")
		default:
		}
		if f == "" {
			continue
		}
		for _, z := range t.SearchSubsequences(f) {
			pairs = append(pairs, Pair{Full: f, Abbr: z.(string)})
		}
	}

	pairs = dedup(pairs)
	if len(pairs) == 0 {
		slog.Warn("dictionary: no subsequence matches found")
	}
	return pairs, nil
}

// dedup sorts pairs by (abbreviation, full) and drops adjacent duplicates,
// matching the reference dictionary's (abbr, full) ordering.
func dedup(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return pairs
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Abbr != pairs[j].Abbr {
			return pairs[i].Abbr < pairs[j].Abbr
		}
		return pairs[i].Full < pairs[j].Full
	})

	out := pairs[:1]
	for i := 1; i < len(pairs); i++ {
		last := out[len(out)-1]
		if pairs[i] != last {
			out = append(out, pairs[i])
		}
	}
	return out
}

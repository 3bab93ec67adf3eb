// Package asj is the approximate string-join core: dictionary
// construction, candidate-pair filtering and pairwise verification over
// abbreviation rules.
package asj

import (
	"github.com/leskin-in/mipt-asj/dictionary"
	"github.com/leskin-in/mipt-asj/filter"
	"github.com/leskin-in/mipt-asj/pkduck"
	"github.com/leskin-in/mipt-asj/rule"
)

// Pair is a discovered (full, abbr) dictionary row.
type Pair = dictionary.Pair

// IndexPair is a candidate (index_a, index_b) row pair.
type IndexPair = filter.IndexPair

// BuildDictionary discovers every (full, abbr) pair where abbr occurs in
// full as a character subsequence. See dictionary.Build.
func BuildDictionary(fulls, abbrs []string) ([]Pair, error) {
	return dictionary.Build(fulls, abbrs)
}

// BuildDictionaryInterruptible is BuildDictionary, checked against
// interrupt between full-form rows. A nil interrupt behaves exactly like
// BuildDictionary.
func BuildDictionaryInterruptible(fulls, abbrs []string, interrupt <-chan struct{}) ([]Pair, error) {
	return dictionary.BuildInterruptible(fulls, abbrs, interrupt)
}

// FilterCandidates computes the sorted, deduplicated superset of index
// pairs that could satisfy Verify at the given exactness, expanding rules
// via the prefix filter. See filter.Candidates.
func FilterCandidates(aRows, bRows []string, rules []rule.StringPairRow, exactness float64, delim string) ([]IndexPair, error) {
	return filter.Candidates(aRows, bRows, rules, exactness, delim)
}

// FilterCandidatesInterruptible is FilterCandidates, checked against
// interrupt between probe rows of both directional sweeps. A nil interrupt
// behaves exactly like FilterCandidates.
func FilterCandidatesInterruptible(aRows, bRows []string, rules []rule.StringPairRow, exactness float64, delim string, interrupt <-chan struct{}) ([]IndexPair, error) {
	return filter.CandidatesInterruptible(aRows, bRows, rules, exactness, delim, interrupt)
}

// Verify reports whether x and y match under pkduck at the given
// exactness. See pkduck.Verify.
func Verify(x, y string, rules []rule.StringPairRow, exactness float64, delim string) (bool, error) {
	return pkduck.Verify(x, y, rules, exactness, delim)
}

// Package filter implements the TDS prefix filter: a candidate-pair
// superset over two tokenised string collections, sound with respect to
// pkduck at a given exactness, computed via token-length-ordered prefix
// signatures and a rule-expansion reachability function (g).
package filter

import (
	"fmt"
	"math"
	"sort"

	"github.com/leskin-in/mipt-asj/rule"
	"github.com/leskin-in/mipt-asj/token"
	"github.com/leskin-in/mipt-asj/util"
)

// IndexPair is a candidate pair of positions, one into the A rows and one
// into the B rows passed to Candidates.
type IndexPair struct {
	A int
	B int
}

// StringPair is an IndexPair materialised back into the strings it
// indexes.
type StringPair struct {
	A string
	B string
}

// prefixSigLength is the TDS prefix-signature length formula,
// ⌊(1-θ)·n⌋+1, used both to size an actual signature (caller clamps to n)
// and, unclamped, as the filter's admission threshold for a hypothetical
// derived length.
func prefixSigLength(n int, exactness float64) int {
	return int(math.Floor((1-exactness)*float64(n))) + 1
}

// signature returns the prefix signature of seq: seq sorted under
// token.Compare (longest/rarest token first), truncated to
// prefixSigLength(len(seq), exactness).
func signature(seq token.Sequence, exactness float64) token.Sequence {
	sorted := make(token.Sequence, len(seq))
	copy(sorted, seq)
	sorted.SortDescending()

	length := prefixSigLength(len(sorted), exactness)
	if length > len(sorted) {
		length = len(sorted)
	}
	return sorted[:length]
}

// Candidates computes the deduplicated, sorted set of (iA, iB) index pairs
// that could possibly satisfy the similarity threshold, given rule
// expansion. Null rows and null rule sides are ignored. An empty rule list
// degenerates to plain prefix-filter Jaccard behaviour.
func Candidates(aRows, bRows []string, ruleRows []rule.StringPairRow, exactness float64, delim string) ([]IndexPair, error) {
	return CandidatesInterruptible(aRows, bRows, ruleRows, exactness, delim, nil)
}

// CandidatesInterruptible is Candidates, checking interrupt between each
// probe row of both directional sweeps (the "top-level pairs" of filtering)
// and returning early with a descriptive error if it fires. A nil interrupt
// behaves exactly like Candidates.
func CandidatesInterruptible(aRows, bRows []string, ruleRows []rule.StringPairRow, exactness float64, delim string, interrupt <-chan struct{}) ([]IndexPair, error) {
	if exactness < 0 || exactness > 1 {
		return nil, fmt.Errorf("filter: exactness must be in [0, 1], got %v", exactness)
	}

	rules := rule.NewSet(ruleRows, delim)
	longestFull := rules.LongestFullLength()

	aSig := signatures(aRows, delim, exactness)
	bSig := signatures(bRows, delim, exactness)

	kept := map[IndexPair]bool{}
	if err := collect(aSig, bSig, rules, longestFull, exactness, kept, false, interrupt); err != nil {
		return nil, err
	}
	if err := collect(bSig, aSig, rules, longestFull, exactness, kept, true, interrupt); err != nil {
		return nil, err
	}

	pairs := make([]IndexPair, 0, len(kept))
	for p := range kept {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs, nil
}

// Materialize indexes aRows/bRows back into string pairs for the given
// index pairs, the filter's materialisation step.
func Materialize(aRows, bRows []string, pairs []IndexPair) []StringPair {
	return util.TransformSlice(pairs, func(p IndexPair) StringPair {
		return StringPair{A: aRows[p.A], B: bRows[p.B]}
	})
}

func signatures(rows []string, delim string, exactness float64) []token.Sequence {
	out := make([]token.Sequence, len(rows))
	for i, row := range rows {
		out[i] = signature(token.Tokenize(row, delim), exactness)
	}
	return out
}

// collect runs the admission test with probeSigs supplying the probe token
// t and targetSigs supplying the sequence g expands against, recording
// (iA, iB) pairs in kept. swapped indicates probeSigs is B, so the pair
// indices must be reported as (target index, probe index).
func collect(probeSigs, targetSigs []token.Sequence, rules rule.Set, longestFull int, exactness float64, kept map[IndexPair]bool, swapped bool, interrupt <-chan struct{}) error {
	for pi, probeSig := range probeSigs {
		select {
		case <-interrupt:
			return fmt.Errorf("filter: interrupted")
		default:
		}
		for _, t := range probeSig {
			for ti, targetSig := range targetSigs {
				if !admits(targetSig, rules, t, longestFull, exactness) {
					continue
				}
				if swapped {
					kept[IndexPair{A: ti, B: pi}] = true
				} else {
					kept[IndexPair{A: pi, B: ti}] = true
				}
			}
		}
	}
	return nil
}

// admits reports whether some derived length l in [1, |s|+longestFull]
// lets g, started from the last index of s, reach probe token t within the
// prefix-signature admission bound.
func admits(s token.Sequence, rules rule.Set, t string, longestFull int, exactness float64) bool {
	if len(s) == 0 {
		return false
	}
	solver := newGSolver(s, rules, t)
	maxL := len(s) + longestFull
	for l := 1; l <= maxL; l++ {
		v := solver.with(len(s)-1, l)
		if v < infinity && v+1 <= prefixSigLength(l, exactness) {
			return true
		}
	}
	return false
}

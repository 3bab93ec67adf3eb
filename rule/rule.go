// Package rule implements abbreviation rules: the bidirectional A ↔ F
// equivalences the filter and verifier expand against.
package rule

import "github.com/leskin-in/mipt-asj/token"

// Rule is an ordered pair (Abbr, Full) standing for the bidirectional
// equivalence Abbr ↔ Full. AbbrTokens and FullTokens hold each side
// tokenised and sorted under token.Compare, with duplicate tokens removed,
// as pkduck treats each side as a set.
type Rule struct {
	Abbr string
	Full string

	AbbrTokens token.Sequence
	FullTokens token.Sequence
}

// StringPairRow is a raw, uncanonicalised (abbr, full) rule row, the shape
// rules are supplied in across the external interface.
type StringPairRow struct {
	Abbr string
	Full string
}

// New canonicalises a raw (abbr, full) pair into a Rule.
func New(abbr, full string, delim string) Rule {
	return Rule{
		Abbr:       abbr,
		Full:       full,
		AbbrTokens: canonicalize(abbr, delim),
		FullTokens: canonicalize(full, delim),
	}
}

func canonicalize(s, delim string) token.Sequence {
	seq := token.Tokenize(s, delim)
	seq.SortDescending()
	return dedupSorted(seq)
}

// dedupSorted drops adjacent duplicates from a token.Compare-sorted
// sequence; distinct tokens of equal length are kept (Compare only ties on
// exact equality).
func dedupSorted(seq token.Sequence) token.Sequence {
	if len(seq) == 0 {
		return seq
	}
	out := seq[:1]
	for i := 1; i < len(seq); i++ {
		if seq[i] != out[len(out)-1] {
			out = append(out, seq[i])
		}
	}
	return out
}

// Set is a collection of canonicalised rules.
type Set []Rule

// NewSet canonicalises a list of raw (abbr, full) pairs, skipping any entry
// whose abbreviation or full side is empty.
func NewSet(rows []StringPairRow, delim string) Set {
	set := make(Set, 0, len(rows))
	for _, row := range rows {
		if row.Abbr == "" || row.Full == "" {
			continue
		}
		set = append(set, New(row.Abbr, row.Full, delim))
	}
	return set
}

// SubRule is one directional application of a Rule: applying it removes
// AppliesTokens from one side and contributes ResultTokens to the other.
type SubRule struct {
	AppliesTokens token.Sequence
	ResultTokens  token.Sequence
	Rule          Rule
}

// Directional doubles every Rule in the set into its two directional
// sub-rules, A→F and F→A, as pkduck's effective rule set.
func (s Set) Directional() []SubRule {
	out := make([]SubRule, 0, len(s)*2)
	for _, r := range s {
		out = append(out,
			SubRule{AppliesTokens: r.AbbrTokens, ResultTokens: r.FullTokens, Rule: r},
			SubRule{AppliesTokens: r.FullTokens, ResultTokens: r.AbbrTokens, Rule: r},
		)
	}
	return out
}

// LongestFullLength returns the maximum token count across all F sides in
// the set, used by the filter as the upper bound of derivable length. It is
// 0 for an empty set.
func (s Set) LongestFullLength() int {
	max := 0
	for _, r := range s {
		if len(r.FullTokens) > max {
			max = len(r.FullTokens)
		}
	}
	return max
}

// Package pkduck implements the verifier: a greedy rule-application
// similarity score between two strings, and the threshold test built on
// top of it.
package pkduck

import (
	"fmt"

	"github.com/leskin-in/mipt-asj/rule"
	"github.com/leskin-in/mipt-asj/token"
	"github.com/leskin-in/mipt-asj/util"
)

// Score tokenises x and y into set-like (sorted, unique) sequences and
// greedily applies the most useful directional sub-rule of rules until
// none applies, then scores the remainder. The result is in [0, 1]; 0 by
// convention when the denominator is 0 (both sides empty).
func Score(x, y string, rules rule.Set, delim string) float64 {
	s1 := toSet(token.Tokenize(x, delim))
	s2 := toSet(token.Tokenize(y, delim))
	subRules := rules.Directional()

	tokensSimilar := 0
	tokensThrown := 0

	for {
		best := -1
		bestUsefulness := -1.0
		for i, r := range subRules {
			if !subsetOf(r.AppliesTokens, s1) {
				continue
			}
			shared := countShared(r.ResultTokens, s2)
			usefulness := float64(shared) / float64(len(r.ResultTokens))
			if usefulness > bestUsefulness {
				bestUsefulness = usefulness
				best = i
			}
		}
		if best < 0 {
			break
		}

		r := subRules[best]
		for _, tok := range r.AppliesTokens {
			delete(s1, tok)
		}
		shared := 0
		for _, tok := range r.ResultTokens {
			if s2[tok] {
				delete(s2, tok)
				shared++
			}
		}
		tokensSimilar += shared
		tokensThrown += len(r.ResultTokens) - shared
	}

	tokensShared := 0
	util.CanonicalMapIter(s1)(func(tok string, _ bool) bool {
		if s2[tok] {
			delete(s1, tok)
			delete(s2, tok)
			tokensShared++
		}
		return true
	})

	numerator := tokensSimilar + tokensShared
	denominator := numerator + len(s1) + len(s2) + tokensThrown
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

// Verify reports whether x and y match at exactness theta: Score(x, y,
// ...) > theta, strictly.
func Verify(x, y string, ruleRows []rule.StringPairRow, theta float64, delim string) (bool, error) {
	if theta < 0 || theta > 1 {
		return false, fmt.Errorf("pkduck: exactness must be in [0, 1], got %v", theta)
	}
	rules := rule.NewSet(ruleRows, delim)
	return Score(x, y, rules, delim) > theta, nil
}

func toSet(seq token.Sequence) map[string]bool {
	set := make(map[string]bool, len(seq))
	for _, tok := range seq {
		set[tok] = true
	}
	return set
}

func subsetOf(tokens token.Sequence, set map[string]bool) bool {
	for _, tok := range tokens {
		if !set[tok] {
			return false
		}
	}
	return true
}

func countShared(tokens token.Sequence, set map[string]bool) int {
	n := 0
	for _, tok := range tokens {
		if set[tok] {
			n++
		}
	}
	return n
}

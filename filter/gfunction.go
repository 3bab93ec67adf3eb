package filter

import (
	"math"

	"github.com/leskin-in/mipt-asj/rule"
	"github.com/leskin-in/mipt-asj/token"
)

// infinity stands for an unreachable derivation. It is kept well below
// math.MaxInt so that one addCapped call never overflows.
const infinity = math.MaxInt32 / 2

// gSolver answers, for a fixed signature s and probe token t, the minimum
// count of tokens ordered strictly before t (under token.Compare) in any
// derivation of s (via rule expansion) of a given length, optionally
// requiring the derivation to contain t at least once.
//
// Two mutually recursive, memoised quantities are tracked:
//
//   - any(i, l): the minimum cost over every valid derivation of exactly l
//     tokens anchored at s[0..=i], regardless of whether it contains t.
//   - with(i, l): the same, but restricted to derivations that contain t.
//
// with is expressed in terms of any: whichever derivation step is taken
// last, if that step itself produces t, the remainder only has to satisfy
// any; otherwise the remainder must itself satisfy with. This keeps both
// quantities pure functions of (i, l), so ordinary memoisation applies.
type gSolver struct {
	s     token.Sequence
	rules rule.Set
	t     string

	memoAny  map[[2]int]int
	memoWith map[[2]int]int
}

func newGSolver(s token.Sequence, rules rule.Set, t string) *gSolver {
	return &gSolver{
		s:        s,
		rules:    rules,
		t:        t,
		memoAny:  map[[2]int]int{},
		memoWith: map[[2]int]int{},
	}
}

func addCapped(a, b int) int {
	if a >= infinity {
		return infinity
	}
	v := a + b
	if v >= infinity {
		return infinity
	}
	return v
}

// any computes the unconstrained minimum cost of deriving exactly l tokens
// from s[0..=i]. Reaching l == 0 always succeeds at cost 0, whatever i
// remains: the rest of s[0..i] is simply outside the derived window.
func (g *gSolver) any(i, l int) int {
	if l == 0 {
		return 0
	}
	if l < 0 || i < 0 {
		return infinity
	}
	key := [2]int{i, l}
	if v, ok := g.memoAny[key]; ok {
		return v
	}

	best := infinity
	switch c := token.Compare(g.s[i], g.t); {
	case c > 0:
		best = addCapped(g.any(i-1, l-1), 0)
	case c < 0:
		best = addCapped(g.any(i-1, l-1), 1)
	default:
		best = addCapped(g.any(i-1, l-1), 0)
	}

	for _, r := range g.rules {
		if ok, di, dl, cost, _ := applyAbbrToFull(g.s, g.t, r, i); ok {
			if v := addCapped(g.any(i-di, l-dl), cost); v < best {
				best = v
			}
		}
		if ok, di, dl, cost, _ := applyFullToAbbr(g.s, g.t, r, i); ok {
			if v := addCapped(g.any(i-di, l-dl), cost); v < best {
				best = v
			}
		}
	}

	g.memoAny[key] = best
	return best
}

// with computes the minimum cost of deriving exactly l tokens from
// s[0..=i] such that the derivation contains t at least once. l == 0 can
// never contain t, so it is always infeasible here (unlike any).
func (g *gSolver) with(i, l int) int {
	if l <= 0 || i < 0 {
		return infinity
	}
	key := [2]int{i, l}
	if v, ok := g.memoWith[key]; ok {
		return v
	}

	best := infinity
	switch c := token.Compare(g.s[i], g.t); {
	case c == 0:
		if v := addCapped(g.any(i-1, l-1), 0); v < best {
			best = v
		}
	case c < 0:
		if v := addCapped(g.with(i-1, l-1), 1); v < best {
			best = v
		}
	default:
		if v := addCapped(g.with(i-1, l-1), 0); v < best {
			best = v
		}
	}

	for _, r := range g.rules {
		if ok, di, dl, cost, hasT := applyAbbrToFull(g.s, g.t, r, i); ok {
			var v int
			if hasT {
				v = addCapped(g.any(i-di, l-dl), cost)
			} else {
				v = addCapped(g.with(i-di, l-dl), cost)
			}
			if v < best {
				best = v
			}
		}
		if ok, di, dl, cost, hasT := applyFullToAbbr(g.s, g.t, r, i); ok {
			var v int
			if hasT {
				v = addCapped(g.any(i-di, l-dl), cost)
			} else {
				v = addCapped(g.with(i-di, l-dl), cost)
			}
			if v < best {
				best = v
			}
		}
	}

	g.memoWith[key] = best
	return best
}

// applyAbbrToFull reports whether s[i], taken alone, is the abbreviation
// side of r (only possible when that side canonicalises to a single
// token), and if so how applying the rule in the A→F direction affects the
// recursion: consuming 1 position of s and contributing len(FullTokens)
// derived tokens, di/dl of which are reported as (1, len(FullTokens)),
// plus the count of F-tokens that compare less than t and whether any
// F-token equals t.
func applyAbbrToFull(s token.Sequence, t string, r rule.Rule, i int) (ok bool, di, dl, cost int, hasT bool) {
	if len(r.AbbrTokens) != 1 || r.AbbrTokens[0] != s[i] {
		return false, 0, 0, 0, false
	}
	for _, tok := range r.FullTokens {
		switch token.Compare(tok, t) {
		case -1:
			cost++
		case 0:
			hasT = true
		}
	}
	return true, 1, len(r.FullTokens), cost, hasT
}

// applyFullToAbbr reports whether the len(FullTokens) tokens of s ending
// at i equal FullTokens in order, and if so how applying the rule in the
// F→A direction affects the recursion: consuming len(FullTokens)
// positions of s and contributing a single derived token (the abbreviated
// form), compared whole against t.
func applyFullToAbbr(s token.Sequence, t string, r rule.Rule, i int) (ok bool, di, dl, cost int, hasT bool) {
	n := len(r.FullTokens)
	if n == 0 {
		return false, 0, 0, 0, false
	}
	start := i - n + 1
	if start < 0 {
		return false, 0, 0, 0, false
	}
	for j := 0; j < n; j++ {
		if s[start+j] != r.FullTokens[j] {
			return false, 0, 0, 0, false
		}
	}
	switch token.Compare(r.Abbr, t) {
	case -1:
		cost = 1
	case 0:
		hasT = true
	}
	return true, n, 1, cost, hasT
}

// Package token implements the delimiter-based tokeniser and the
// longer-tokens-first comparator shared by every other package in this
// module.
package token

import (
	"sort"
	"strings"
)

// Sequence is an ordered, mutable list of tokens.
type Sequence []string

// Tokenize splits s on any byte contained in delim, strtok-style: runs of
// delimiter bytes collapse and empty tokens are dropped. The tokeniser is
// byte-oriented and never validates UTF-8.
func Tokenize(s, delim string) Sequence {
	if delim == "" {
		if s == "" {
			return Sequence{}
		}
		return Sequence{s}
	}

	result := make(Sequence, 0, 4)
	start := -1
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delim, s[i]) >= 0 {
			if start >= 0 {
				result = append(result, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		result = append(result, s[start:])
	}
	return result
}

// RemoveAt removes the token at index i, shifting subsequent tokens down
// by one, and returns the removed token.
func (s *Sequence) RemoveAt(i int) string {
	removed := (*s)[i]
	copy((*s)[i:], (*s)[i+1:])
	*s = (*s)[:len(*s)-1]
	return removed
}

// Compare implements the total order used for prefix signatures and rule
// sides: the longer token precedes, ties broken lexicographically. Lengths
// are compared directly rather than subtracted, so this never mis-signs on
// tokens whose length difference would overflow a narrow integer.
func Compare(a, b string) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// SortDescending sorts s under Compare (longest/rarest token first).
func (s Sequence) SortDescending() {
	sort.Slice(s, func(i, j int) bool { return Compare(s[i], s[j]) < 0 })
}

// Join concatenates the tokens with delim, the inverse of Tokenize for
// single-byte delimiters with no interior runs.
func (s Sequence) Join(delim string) string {
	return strings.Join([]string(s), delim)
}

package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeDropsEmptyTokens(t *testing.T) {
	assert.Equal(t, Sequence{"a", "b", "c"}, Tokenize("a  b   c", " "))
	assert.Equal(t, Sequence{}, Tokenize("", " "))
	assert.Equal(t, Sequence{}, Tokenize("   ", " "))
}

func TestTokenizeMultiByteDelimiter(t *testing.T) {
	assert.Equal(t, Sequence{"a", "b", "c"}, Tokenize("a, b;c", ", ;"))
}

func TestTokenizeNoDelimiterMatch(t *testing.T) {
	assert.Equal(t, Sequence{"international"}, Tokenize("international", " "))
}

func TestTokenizeRoundTrip(t *testing.T) {
	s := "new   york  city"
	seq := Tokenize(s, " ")
	for _, tok := range seq {
		assert.False(t, strings.Contains(tok, " "))
	}
	assert.Equal(t, "new york city", seq.Join(" "))
}

func TestCompareLongerPrecedes(t *testing.T) {
	assert.True(t, Compare("aaa", "bb") < 0)
	assert.True(t, Compare("bb", "aaa") > 0)
}

func TestCompareTieBrokenLexicographically(t *testing.T) {
	assert.True(t, Compare("aa", "ab") < 0)
	assert.True(t, Compare("ab", "aa") > 0)
	assert.Equal(t, 0, Compare("aa", "aa"))
}

func TestCompareTotality(t *testing.T) {
	tokens := []string{"ab", "a", "abc", "xy", "b"}
	for _, a := range tokens {
		for _, b := range tokens {
			for _, c := range tokens {
				lt := Compare(a, b) < 0
				eq := Compare(a, b) == 0
				gt := Compare(a, b) > 0
				count := 0
				for _, v := range []bool{lt, eq, gt} {
					if v {
						count++
					}
				}
				assert.Equal(t, 1, count)

				if lt && Compare(b, c) < 0 {
					assert.True(t, Compare(a, c) < 0)
				}
			}
		}
	}
}

func TestSortDescending(t *testing.T) {
	seq := Sequence{"a", "bbb", "cc", "dddd"}
	seq.SortDescending()
	assert.Equal(t, Sequence{"dddd", "bbb", "cc", "a"}, seq)
}

func TestRemoveAt(t *testing.T) {
	seq := Sequence{"a", "b", "c"}
	removed := seq.RemoveAt(1)
	assert.Equal(t, "b", removed)
	assert.Equal(t, Sequence{"a", "c"}, seq)
}

package rule

import (
	"testing"

	"github.com/leskin-in/mipt-asj/token"
	"github.com/stretchr/testify/assert"
)

func TestNewCanonicalizesSortsAndDedups(t *testing.T) {
	r := New("new york", "new york city", " ")
	assert.Equal(t, token.Sequence{"york", "new"}, r.AbbrTokens)
	assert.Equal(t, token.Sequence{"city", "york", "new"}, r.FullTokens)
}

func TestNewDedupsRepeatedTokens(t *testing.T) {
	r := New("a a a", "b", " ")
	assert.Equal(t, token.Sequence{"a"}, r.AbbrTokens)
}

func TestNewSetSkipsEmptySides(t *testing.T) {
	rows := []StringPairRow{
		{Abbr: "ibm", Full: "international business machines"},
		{Abbr: "", Full: "full"},
		{Abbr: "abbr", Full: ""},
	}
	set := NewSet(rows, " ")
	assert.Len(t, set, 1)
}

func TestDirectionalDoublesRules(t *testing.T) {
	set := NewSet([]StringPairRow{{Abbr: "ny", Full: "new york"}}, " ")
	subs := set.Directional()
	assert.Len(t, subs, 2)
	assert.Equal(t, set[0].AbbrTokens, subs[0].AppliesTokens)
	assert.Equal(t, set[0].FullTokens, subs[0].ResultTokens)
	assert.Equal(t, set[0].FullTokens, subs[1].AppliesTokens)
	assert.Equal(t, set[0].AbbrTokens, subs[1].ResultTokens)
}

func TestLongestFullLength(t *testing.T) {
	set := NewSet([]StringPairRow{
		{Abbr: "ny", Full: "new york"},
		{Abbr: "ibm", Full: "international business machines"},
	}, " ")
	assert.Equal(t, 3, set.LongestFullLength())
}

func TestLongestFullLengthEmptySet(t *testing.T) {
	var set Set
	assert.Equal(t, 0, set.LongestFullLength())
}

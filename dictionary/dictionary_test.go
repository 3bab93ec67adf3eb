package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBasic(t *testing.T) {
	pairs, err := Build(
		[]string{"international business machines"},
		[]string{"ibm", "bm", "xyz"},
	)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []Pair{
		{Full: "international business machines", Abbr: "ibm"},
		{Full: "international business machines", Abbr: "bm"},
	}, pairs)
}

func TestBuildDedup(t *testing.T) {
	pairs, err := Build([]string{"a a a"}, []string{"a"})
	assert.NoError(t, err)
	assert.Len(t, pairs, 1)
	assert.Equal(t, Pair{Full: "a a a", Abbr: "a"}, pairs[0])
}

func TestBuildEmptyAbbrsIsFatal(t *testing.T) {
	_, err := Build([]string{"full"}, nil)
	assert.Error(t, err)
}

func TestBuildEmptyFullsIsNotFatal(t *testing.T) {
	pairs, err := Build(nil, []string{"abbr"})
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestBuildSkipsNullRows(t *testing.T) {
	pairs, err := Build([]string{"", "ibm corp"}, []string{"", "ibm"})
	assert.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestBuildIdempotence(t *testing.T) {
	fulls := []string{"international business machines", "general electric"}
	abbrs := []string{"ibm", "ge", "bm"}
	first, err := Build(fulls, abbrs)
	assert.NoError(t, err)
	second, err := Build(fulls, abbrs)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildNoMatchesReturnsEmpty(t *testing.T) {
	pairs, err := Build([]string{"hello world"}, []string{"xyz"})
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestBuildInterruptibleStopsEarly(t *testing.T) {
	interrupt := make(chan struct{})
	close(interrupt)
	_, err := BuildInterruptible([]string{"international business machines"}, []string{"ibm"}, interrupt)
	assert.Error(t, err)
}

func TestBuildInterruptibleNilBehavesLikeBuild(t *testing.T) {
	pairs, err := BuildInterruptible([]string{"international business machines"}, []string{"ibm"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []Pair{{Full: "international business machines", Abbr: "ibm"}}, pairs)
}

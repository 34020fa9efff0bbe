package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"title", "title", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"interface", "interfaces", 1},
		{"größe", "grosse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestClosest(t *testing.T) {
	candidates := []string{"title", "titles", "manufacturer", "tile"}

	got := Closest("titel", candidates, 2, 0.5)
	require.Len(t, got, 2)
	assert.Equal(t, "tile", got[0].Value)
	assert.Equal(t, "title", got[1].Value)

	assert.Empty(t, Closest("titel", candidates, 0, 0.5))
	assert.Empty(t, Closest("zzzzzzzz", candidates, 3, 0.9))
}

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"abc", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"héllo", "hello", 1},
		{"command", "comand", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"OrderID":       "orderid",
		"order_id":      "orderid",
		"order-id":      "orderid",
		"orderId":       "orderid",
		"XMLParser":     "xmlparser",
		"order_item-ID": "orderitemid",
		"":              "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdent(in), in)
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("CurrentDir", "current_dir"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("Comd", "Cmd"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestRank(t *testing.T) {
	candidates := []string{"Command", "CommandBuilder", "Commands", "Config", "Command"}

	ranked := Rank("Comand", candidates, DefaultThreshold)

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"Command", "Commands"}, names)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_SkipsExactMatch(t *testing.T) {
	assert.Empty(t, Rank("Config", []string{"Config"}, 0))
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Triple", "Tripel", "Trouble", "Pair"}

	assert.Equal(t, []string{"Tripel"}, Suggest("Tripl", candidates, 1))
	assert.Equal(t, []string{"Tripel", "Triple"}, Suggest("Tripl", candidates, 5))
	assert.Empty(t, Suggest("Nothing", candidates, 3))
}

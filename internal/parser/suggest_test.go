package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"get", "get", 0},
		{"get", "GET", 0},
		{"gte", "get", 2},
		{"remote", "remove", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"remove", "remote", "remotes", "rename", "get", "remote"}

	require.Equal(t, []string{"remote", "remotes", "remove"}, Suggest("remot", candidates))
	require.Nil(t, Suggest("xyz", candidates))
	require.Nil(t, Suggest("get", []string{"get"}), "exact matches are not suggestions")
	require.Nil(t, Suggest("ab", []string{"xy"}), "everything replaced is not similar")
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("aaaa", []string{"aaab", "aaac", "aaad", "aaae", "aabb"})
	require.Equal(t, []string{"aaab", "aaac", "aaad"}, got)
}

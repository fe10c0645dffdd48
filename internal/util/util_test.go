package util

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
		{"karras", "karras", 0},
		{"karas", "karras", 1},
		{"exponential", "polyexponential", 4},
		{"vp", "", 2},
		{"normal", "simple", 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "Levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	assert.Equal(t, Levenshtein("karras", "laplace"), Levenshtein("laplace", "karras"))
}

func TestFavouritesOnTop(t *testing.T) {
	items := []string{"exponential", "karras", "laplace", "normal", "vp"}

	got := FavouritesOnTop([]string{"karras", "vp"}, items)
	assert.Equal(t, []string{"karras", "vp", "exponential", "laplace", "normal"}, got)
}

func TestFavouritesOnTopCaseInsensitive(t *testing.T) {
	got := FavouritesOnTop([]string{"KARRAS"}, []string{"normal", "karras"})
	assert.Equal(t, []string{"karras", "normal"}, got)
}

func TestFavouritesOnTopNoFavourites(t *testing.T) {
	items := []string{"b", "a"}
	assert.Equal(t, items, FavouritesOnTop(nil, items))
}

func TestFavouritesOnTopSubstringMatch(t *testing.T) {
	got := FavouritesOnTop([]string{"exp"}, []string{"karras", "exponential", "polyexponential"})
	assert.Equal(t, []string{"exponential", "polyexponential", "karras"}, got)
}

// Small shared helpers for string matching and list ordering
package util

import "strings"

// Levenshtein returns the edit distance between two strings.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		return Levenshtein(b, a)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	previous := make([]int, len(rb)+1)
	for i := range previous {
		previous[i] = i
	}

	for i, ca := range ra {
		current := make([]int, 0, len(rb)+1)
		current = append(current, i+1)
		for j, cb := range rb {
			insertion := previous[j+1] + 1
			deletion := current[j] + 1
			substitution := previous[j]
			if ca != cb {
				substitution++
			}
			current = append(current, min(insertion, deletion, substitution))
		}
		previous = current
	}

	return previous[len(previous)-1]
}

// FavouritesOnTop reorders items so that anything matching a favourite
// (case-insensitive substring match) comes first. Relative order is
// preserved within both groups.
func FavouritesOnTop(favourites, items []string) []string {
	if len(favourites) == 0 {
		return items
	}

	prioritized := make([]string, 0, len(items))
	rest := make([]string, 0, len(items))

	for _, item := range items {
		matched := false
		for _, fav := range favourites {
			if fav != "" && strings.Contains(strings.ToLower(item), strings.ToLower(fav)) {
				matched = true
				break
			}
		}
		if matched {
			prioritized = append(prioritized, item)
		} else {
			rest = append(rest, item)
		}
	}

	return append(prioritized, rest...)
}

package util

import (
	"sort"
	"strings"
)

// LevenshteinDistance returns the minimum number of single-character
// edits (insertions, deletions, substitutions) needed to turn a into b.
// Comparison is case-sensitive.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// SuggestSimilar returns the candidates within maxDistance edits of
// input, closest first. Matching ignores case. Returns nil when input
// is empty or nothing is close enough; callers render suggestions only
// when there is something to say.
func SuggestSimilar(input string, candidates []string, maxDistance int) []string {
	if input == "" {
		return nil
	}
	lowered := strings.ToLower(input)

	type scored struct {
		name     string
		distance int
	}
	var matches []scored
	for _, candidate := range candidates {
		d := LevenshteinDistance(lowered, strings.ToLower(candidate))
		if d <= maxDistance {
			matches = append(matches, scored{name: candidate, distance: d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Package similarity provides the string comparison primitives the matching
// pipeline is built on: longest-common-substring scoring for gloss overlap,
// substring containment, and normalized edit distances. All scores are
// rune-based and fall in [0, 1].
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// LCSScore returns the length of the longest common contiguous substring of a
// and b, normalized by the longer input's rune length. Identical non-empty
// strings score 1; strings with no run in common, and any comparison against
// an empty string, score 0.
func LCSScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)

	// Rolling rows of the common-suffix-length table.
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	best := 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return float64(best) / float64(longer)
}

// Contains reports whether item occurs inside container as a plain substring.
// Inputs are expected already lower-cased; the pipeline folds case at split
// time. Note this is deliberately looser than word-boundary containment:
// "grapefruit" contains "grape".
func Contains(container, item string) bool {
	return strings.Contains(container, item)
}

// EditSimilarity returns 1 minus the Levenshtein distance between a and b,
// normalized by the longer rune length. Two empty strings are identical and
// score 1.
func EditSimilarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 1
	}
	longer := la
	if lb > longer {
		longer = lb
	}
	return 1 - float64(edlib.LevenshteinDistance(a, b))/float64(longer)
}

// NormalizedDamerauLevenshtein returns the optimal-string-alignment
// Damerau-Levenshtein distance between a and b (adjacent transpositions count
// as one edit), normalized by the longer rune length. Two empty strings score
// 0: there is nothing to edit.
func NormalizedDamerauLevenshtein(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 0
	}
	longer := la
	if lb > longer {
		longer = lb
	}
	return float64(edlib.OSADamerauLevenshteinDistance(a, b)) / float64(longer)
}

// Package fuzzy implements approximate string matching for name search.
// Both functions are pure and safe for concurrent use.
package fuzzy

// EditDistance returns the minimum number of single-character insertions,
// deletions, and substitutions needed to transform a into b, computed over
// a full dynamic-programming table with no early termination. Characters
// are runes, so multi-byte scripts such as Cyrillic count one edit per
// letter. The function performs no case normalization; callers must
// lowercase both inputs first.
func EditDistance(a, b string) int {
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
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns a score in [0,1]: 1 - EditDistance(a,b)/max(len(a),
// len(b)), with rune lengths. Two empty strings are an exact match of
// nothing and score 1.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))

	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}

	return 1 - float64(EditDistance(a, b))/float64(maxLen)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

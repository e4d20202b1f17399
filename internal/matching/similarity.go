package matching

// FuzzyThreshold is the similarity a resume concept must exceed to count as a fuzzy match.
const FuzzyThreshold = 0.6

// Levenshtein returns the edit distance between a and b over Unicode code points, with unit cost
// for insertion, deletion and substitution.
func Levenshtein(a, b string) int {
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
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity maps edit distance to [0,1]: 1 - distance/longer length. Two empty strings are
// identical.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Similar reports whether a and b clear FuzzyThreshold.
func Similar(a, b string) bool {
	return Similarity(a, b) > FuzzyThreshold
}

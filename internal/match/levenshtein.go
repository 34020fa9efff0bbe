package match

import (
	"sort"
)

// Levenshtein computes the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// keep the row as short as possible
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			above := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(above+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}

// Similarity maps the edit distance into [0, 1], where 1 means identical.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}

// Scored is a candidate with its similarity to a query.
type Scored struct {
	Value string
	Score float64
}

// Closest returns up to n candidates whose similarity to query is at least
// minScore, best first. Ties are broken alphabetically.
func Closest(query string, candidates []string, n int, minScore float64) []Scored {
	if n <= 0 {
		return nil
	}

	var ranked []Scored

	for _, c := range candidates {
		s := Similarity(query, c)
		if s >= minScore {
			ranked = append(ranked, Scored{Value: c, Score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Value < ranked[j].Value
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

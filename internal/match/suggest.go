package match

import "sort"

// DefaultThreshold is the minimum NormalizedSimilarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a scored suggestion.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// threshold, best first. Ties are broken by name so the result is stable.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	var out []Candidate

	for _, c := range candidates {
		score := NormalizedSimilarity(name, c)
		if score < threshold {
			continue
		}

		out = append(out, Candidate{Name: c, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns the closest candidate to name, if any scores at or above threshold.
func Suggest(name string, candidates []string, threshold float64) (string, bool) {
	ranked := Rank(name, candidates, threshold)
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].Name, true
}

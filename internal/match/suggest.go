package match

import "sort"

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// threshold, best first. Ties are ordered by name. Exact matches are left
// out, since a name that exists needs no suggestion.
func Rank(name string, candidates []string, threshold float64) []Candidate {
	var out []Candidate

	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if c == name || seen[c] {
			continue
		}

		seen[c] = true

		if score := Similarity(name, c); score >= threshold {
			out = append(out, Candidate{Name: c, Score: score})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns at most limit candidate names close to name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultThreshold)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}

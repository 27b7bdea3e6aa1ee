// ABOUTME: Thin wrapper over sahilm/fuzzy used by the tree label filter
// ABOUTME: Returns matches best-first with the matched rune positions for highlighting

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one fuzzy hit against the candidate list.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find matches pattern against items, best score first.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

package analyze

import "sort"

// mostUsedLimit caps the most_used_keywords ranking.
const mostUsedLimit = 10

// Patterns summarizes corpus-wide keyword usage.
type Patterns struct {
	MostUsed map[string]int `json:"most_used_keywords"`
	Unused   []string       `json:"unused_keywords"`
}

// KeywordPatterns returns the top-10 keyword names by occurrence count
// (ties broken by discovery order) and the list of names with zero
// occurrences. The tally is only ever incremented when a keyword is
// discovered, so a zero count is unreachable and Unused is structurally
// always empty; the field is kept because the report contract carries it.
func (a *Analysis) KeywordPatterns() Patterns {
	ranked := make([]string, len(a.nameOrder))
	copy(ranked, a.nameOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.usage[ranked[i]] > a.usage[ranked[j]]
	})
	if len(ranked) > mostUsedLimit {
		ranked = ranked[:mostUsedLimit]
	}

	mostUsed := make(map[string]int, len(ranked))
	for _, name := range ranked {
		mostUsed[name] = a.usage[name]
	}

	unused := []string{}
	for _, name := range a.nameOrder {
		if a.usage[name] == 0 {
			unused = append(unused, name)
		}
	}

	return Patterns{MostUsed: mostUsed, Unused: unused}
}

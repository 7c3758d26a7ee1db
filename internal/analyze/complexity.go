package analyze

import (
	"math"
	"sort"
)

// ComplexityScore is one keyword's structural complexity: the Shannon
// entropy (base 2) of its step-token frequency distribution, plus the raw
// step count. JSON keys match the report contract.
type ComplexityScore struct {
	Name      string  `json:"Test Keyword"`
	Entropy   float64 `json:"Entropy Score"`
	StepCount int     `json:"Step Count"`
}

// Complexity scores every keyword in the corpus, sorted by entropy
// descending (stable, so ties keep corpus order).
//
// Because step tokens encode line spans and spans within one body rarely
// repeat, entropy is typically at or near log2(n) and only drops when two
// statements coincidentally share a start/end pair. It measures structural
// spread, not semantic test complexity.
func (a *Analysis) Complexity() []ComplexityScore {
	scores := make([]ComplexityScore, 0, len(a.keywords))
	for _, k := range a.keywords {
		scores = append(scores, ComplexityScore{
			Name:      k.Name,
			Entropy:   round2(entropy(k.Steps)),
			StepCount: len(k.Steps),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Entropy > scores[j].Entropy
	})
	return scores
}

// entropy computes the Shannon entropy of the token distribution in steps.
// Zero steps means zero entropy.
func entropy(steps []string) float64 {
	n := len(steps)
	if n == 0 {
		return 0
	}
	counts := make(map[string]int, n)
	for _, s := range steps {
		counts[s]++
	}
	var h float64
	for _, c := range counts {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

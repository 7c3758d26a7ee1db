package analyze

import "sort"

// redundancyThreshold is the strict lower bound on reported similarity.
const redundancyThreshold = 0.8

// RedundantPair is one unordered pair of keywords whose step-token sets
// exceed the similarity threshold.
type RedundantPair struct {
	Test1      string  `json:"test1"`
	Test2      string  `json:"test2"`
	Similarity float64 `json:"similarity"`
}

// Redundancy computes Jaccard similarity over every unordered pair of
// keywords in corpus order and returns the pairs above the threshold,
// sorted by similarity descending (stable). Each unordered pair appears at
// most once; a pair where both keywords have no steps is skipped, since its
// similarity is undefined. The scan is O(n^2) over the corpus, which is fine
// at the hundreds-of-keywords scale this tool targets.
func (a *Analysis) Redundancy() []RedundantPair {
	pairs := []RedundantPair{}
	for i := range a.keywords {
		stepsA := stepSet(a.keywords[i].Steps)
		for j := i + 1; j < len(a.keywords); j++ {
			stepsB := stepSet(a.keywords[j].Steps)

			inter := 0
			for s := range stepsA {
				if _, ok := stepsB[s]; ok {
					inter++
				}
			}
			union := len(stepsA) + len(stepsB) - inter
			if union == 0 {
				continue
			}

			similarity := float64(inter) / float64(union)
			if similarity > redundancyThreshold {
				pairs = append(pairs, RedundantPair{
					Test1:      a.keywords[i].Name,
					Test2:      a.keywords[j].Name,
					Similarity: round2(similarity),
				})
			}
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})
	return pairs
}

// stepSet collapses a step sequence into a set; duplicate tokens within one
// keyword count once for similarity purposes.
func stepSet(steps []string) map[string]struct{} {
	set := make(map[string]struct{}, len(steps))
	for _, s := range steps {
		set[s] = struct{}{}
	}
	return set
}

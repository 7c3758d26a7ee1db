// Package analyze owns the state of one analysis run and derives the
// complexity, redundancy, and usage-pattern metrics from it.
//
// All state lives on the Analysis value; there is no package-level
// accumulator. Extraction results are merged in file-visit order through
// Add, which fixes the discovery order that tally tie-breaking and suite
// listings depend on.
package analyze

import (
	"math"

	"github.com/scienceartist/robometrics/internal/model"
)

// Analysis accumulates extracted keywords for one run.
type Analysis struct {
	keywords  []model.Keyword
	usage     map[string]int
	nameOrder []string // distinct names, first-seen order
	suites    map[string][]model.Keyword
	suiteKeys []string
}

// New returns an empty Analysis.
func New() *Analysis {
	return &Analysis{
		usage:  make(map[string]int),
		suites: make(map[string][]model.Keyword),
	}
}

// Add merges one file's keywords under the given suite name (the basename
// of the file's containing directory). Each keyword is appended to the
// corpus and counted once in the usage tally. A file with no keywords
// creates no suite entry.
//
// Suite identity is the directory basename only: two distinct directories
// sharing a basename merge into one suite. Known limitation, kept for
// output compatibility.
func (a *Analysis) Add(suite string, kws []model.Keyword) {
	if len(kws) == 0 {
		return
	}
	for _, k := range kws {
		if _, seen := a.usage[k.Name]; !seen {
			a.nameOrder = append(a.nameOrder, k.Name)
		}
		a.usage[k.Name]++
		a.keywords = append(a.keywords, k)
	}
	if _, seen := a.suites[suite]; !seen {
		a.suiteKeys = append(a.suiteKeys, suite)
	}
	a.suites[suite] = append(a.suites[suite], kws...)
}

// TotalTests returns the number of keyword occurrences in the corpus.
func (a *Analysis) TotalTests() int {
	return len(a.keywords)
}

// TotalKeywords returns the number of distinct keyword names.
func (a *Analysis) TotalKeywords() int {
	return len(a.usage)
}

// TotalSuites returns the number of suites.
func (a *Analysis) TotalSuites() int {
	return len(a.suites)
}

// SuiteStructure returns suite name -> keyword names in discovery order
// (file-visit order, then in-file declaration order).
func (a *Analysis) SuiteStructure() map[string][]string {
	out := make(map[string][]string, len(a.suites))
	for _, suite := range a.suiteKeys {
		names := make([]string, len(a.suites[suite]))
		for i, k := range a.suites[suite] {
			names[i] = k.Name
		}
		out[suite] = names
	}
	return out
}

// round2 rounds to 2 decimal digits, the precision of every reported score.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

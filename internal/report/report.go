// Package report assembles the analysis results into the JSON report and
// writes it under the analyzed directory. It is the only package that
// touches the timestamp source and the report file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/scienceartist/robometrics/internal/analyze"
)

// OutputDir is the fixed subdirectory of the analyzed directory that
// receives the report file.
const OutputDir = "test_analysis_output"

const fileName = "analysis_report.json"

// Summary holds the corpus-wide counts.
type Summary struct {
	TotalTests    int `json:"total_tests"`
	TotalKeywords int `json:"total_keywords"`
	TotalSuites   int `json:"total_suites"`
}

// Report is the immutable output record, assembled exactly once per run
// after extraction completes. Field order matches the report contract.
type Report struct {
	Timestamp  string                    `json:"analysis_timestamp"`
	Summary    Summary                   `json:"test_suite_summary"`
	Complexity []analyze.ComplexityScore `json:"complexity_analysis"`
	Redundancy []analyze.RedundantPair   `json:"redundancy_analysis"`
	Patterns   analyze.Patterns          `json:"keyword_patterns"`
	Suites     map[string][]string       `json:"suite_structure"`
}

// Assemble builds the report from a completed analysis. now is injected so
// callers own the clock.
func Assemble(a *analyze.Analysis, now time.Time) *Report {
	return &Report{
		Timestamp: now.Format(time.RFC3339),
		Summary: Summary{
			TotalTests:    a.TotalTests(),
			TotalKeywords: a.TotalKeywords(),
			TotalSuites:   a.TotalSuites(),
		},
		Complexity: a.Complexity(),
		Redundancy: a.Redundancy(),
		Patterns:   a.KeywordPatterns(),
		Suites:     a.SuiteStructure(),
	}
}

// Encode renders the report as 4-space-indented JSON.
func (r *Report) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return data, nil
}

// WriteFile writes an already-encoded report to dir/test_analysis_output/
// analysis_report.json, creating the output directory if absent. It returns
// the output directory path.
func WriteFile(dir string, data []byte) (string, error) {
	outDir := filepath.Join(dir, OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", outDir, err)
	}

	path := filepath.Join(outDir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return outDir, nil
}

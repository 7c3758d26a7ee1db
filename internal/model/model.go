// Package model defines core data structures for robometrics.
package model

// Keyword represents one discovered Robot Framework keyword: a Python
// function carrying a `keyword` decorator or a `test_` name prefix.
// A Keyword is immutable once extraction of its file completes.
type Keyword struct {
	// Name is the function identifier. Not unique across files.
	Name string

	// File is the path of the declaring source file.
	File string

	// Line is the 1-based source line of the declaration.
	Line int

	// Params holds the declared parameter names in order, excluding the
	// literal receiver name "self".
	Params []string

	// Steps holds one signature token per non-docstring top-level statement
	// of the body, in source order. A token encodes only the statement's
	// line extent ("Line <start>-<end>"), not its content; two statements
	// are identical for metric purposes iff they span the same lines.
	Steps []string
}

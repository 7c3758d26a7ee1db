// Package lang holds the tree-sitter Python configuration: the grammar
// handle, a parser factory, and the embedded keyword-definition query.
package lang

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

//go:embed queries/*.scm
var queryFS embed.FS

// SourceExt is the fixed extension of analyzable source files.
const SourceExt = ".py"

var (
	queryOnce sync.Once
	query     *sitter.Query
	queryErr  error
)

// Grammar returns the tree-sitter Python language pointer.
func Grammar() *sitter.Language {
	return python.GetLanguage()
}

// NewParser creates a fresh Python parser. Parsers are not thread-safe;
// each goroutine must use its own.
func NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return p
}

// KeywordQuery returns the compiled function-definition query
// (safe to share across goroutines).
func KeywordQuery() (*sitter.Query, error) {
	queryOnce.Do(func() {
		data, err := queryFS.ReadFile("queries/python.scm")
		if err != nil {
			queryErr = fmt.Errorf("reading query file: %w", err)
			return
		}
		q, err := sitter.NewQuery(data, python.GetLanguage())
		if err != nil {
			queryErr = fmt.Errorf("compiling query: %w", err)
			return
		}
		query = q
	})
	return query, queryErr
}

// IsSourceFile reports whether name has the analyzable source extension.
func IsSourceFile(name string) bool {
	return strings.HasSuffix(name, SourceExt)
}

// NodeText returns the source text of a tree-sitter node.
func NodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

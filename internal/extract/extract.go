// Package extract recovers Robot Framework keywords from Python source
// using tree-sitter.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/scienceartist/robometrics/internal/lang"
	"github.com/scienceartist/robometrics/internal/model"
)

const (
	// markerDecorator is the sentinel decorator identifier that marks a
	// function as a keyword, bare (@keyword) or invoked (@keyword("Name")).
	markerDecorator = "keyword"

	// testPrefix qualifies a function by name alone.
	testPrefix = "test_"

	// receiverName is the one parameter name excluded from Params. Only the
	// literal token is excluded, not the first parameter in general.
	receiverName = "self"
)

// Keywords parses one file's source and returns every qualifying keyword in
// declaration order. filePath is recorded on each Keyword and should be the
// path the caller will report. A parse failure yields (nil, err); the file
// then contributes zero keywords and the caller decides whether to continue.
func Keywords(parser *sitter.Parser, query *sitter.Query, source []byte, filePath string) ([]model.Keyword, error) {
	if len(source) == 0 {
		return nil, nil
	}

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	defer tree.Close()

	// Tree-sitter recovers from bad syntax instead of failing, but a
	// malformed file must contribute zero keywords, not whatever survived
	// error recovery.
	if tree.RootNode().HasError() {
		return nil, errors.New("syntax error")
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var keywords []model.Keyword

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, source)

		var nameNode, defNode *sitter.Node
		for _, c := range match.Captures {
			switch query.CaptureNameForId(c.Index) {
			case "name":
				nameNode = c.Node
			case "definition.function":
				defNode = c.Node
			}
		}
		if nameNode == nil || defNode == nil {
			continue
		}

		name := lang.NodeText(nameNode, source)
		if !isKeyword(defNode, name, source) {
			continue
		}

		keywords = append(keywords, model.Keyword{
			Name:   name,
			File:   filePath,
			Line:   int(defNode.StartPoint().Row) + 1,
			Params: paramNames(defNode, source),
			Steps:  bodySteps(defNode),
		})
	}

	return keywords, nil
}

// isKeyword is the qualification predicate: a marker decorator or a test_
// name prefix, either alone suffices.
func isKeyword(defNode *sitter.Node, name string, source []byte) bool {
	if hasMarkerDecorator(defNode, source) {
		return true
	}
	return strings.HasPrefix(name, testPrefix)
}

// hasMarkerDecorator reports whether the function is wrapped in a
// decorated_definition carrying the marker, either as a bare identifier or
// as the callee of a decorator call.
func hasMarkerDecorator(defNode *sitter.Node, source []byte) bool {
	parent := defNode.Parent()
	if parent == nil || parent.Type() != "decorated_definition" {
		return false
	}
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		dec := parent.NamedChild(i)
		if dec.Type() != "decorator" {
			continue
		}
		expr := dec.NamedChild(0)
		if expr == nil {
			continue
		}
		switch expr.Type() {
		case "identifier":
			if lang.NodeText(expr, source) == markerDecorator {
				return true
			}
		case "call":
			fn := expr.ChildByFieldName("function")
			if fn != nil && fn.Type() == "identifier" && lang.NodeText(fn, source) == markerDecorator {
				return true
			}
		}
	}
	return false
}

// paramNames returns the declared parameter names in order, excluding the
// literal receiver token.
func paramNames(defNode *sitter.Node, source []byte) []string {
	params := defNode.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var names []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		name := paramName(params.NamedChild(i), source)
		if name == "" || name == receiverName {
			continue
		}
		names = append(names, name)
	}
	return names
}

func paramName(node *sitter.Node, source []byte) string {
	switch node.Type() {
	case "identifier":
		return lang.NodeText(node, source)
	case "typed_parameter":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "identifier" {
				return lang.NodeText(child, source)
			}
		}
	case "default_parameter", "typed_default_parameter":
		name := node.ChildByFieldName("name")
		if name != nil && name.Type() == "identifier" {
			return lang.NodeText(name, source)
		}
	case "list_splat_pattern", "dictionary_splat_pattern":
		child := node.NamedChild(0)
		if child != nil && child.Type() == "identifier" {
			return lang.NodeText(child, source)
		}
	}
	return ""
}

// bodySteps renders one signature token per top-level statement of the
// function body, skipping docstrings. The traversal is shallow: a compound
// statement (if/for/try/with) is one token spanning its whole extent,
// nested statements are not descended into. Tokens encode line position
// only, never content; two statements are identical for metric purposes
// iff they share an exact start/end span.
func bodySteps(defNode *sitter.Node) []string {
	body := defNode.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	var steps []string
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() == "comment" || isDocstring(stmt) {
			continue
		}
		start := int(stmt.StartPoint().Row) + 1
		end := int(stmt.EndPoint().Row) + 1
		steps = append(steps, fmt.Sprintf("Line %d-%d", start, end))
	}
	return steps
}

// isDocstring reports whether stmt is a bare string-literal expression
// statement.
func isDocstring(stmt *sitter.Node) bool {
	return stmt.Type() == "expression_statement" &&
		stmt.NamedChildCount() == 1 &&
		stmt.NamedChild(0).Type() == "string"
}

// Package sexp parses textual S-expression sources into a tree of groups
// and leaves.
package sexp

import (
	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/parser"
)

// Parse parses the input with lenient defaults and returns the root group.
func Parse(in []byte) (*ast.Node, error) {
	return parser.Parse(string(in))
}

package ast

import (
	"errors"
	"fmt"

	"github.com/sexpkit/sexp/lexer"
)

// Node represents one element of the parsed tree: either a leaf wrapping a
// single lexical unit, or a group holding an ordered list of children.
// Nodes are built once during parsing and never mutated afterwards.
type Node struct {
	p *Node

	nt       NodeType
	tok      *lexer.Token
	children []*Node
}

// NewLeaf creates and returns an orphaned leaf node wrapping the given unit
func NewLeaf(tok *lexer.Token) *Node {
	nt := NodeTypeIdent
	if tok.Is(lexer.TokenNumber) {
		nt = NodeTypeNumber
	}
	return &Node{nt: nt, tok: tok}
}

// NewGroup creates and returns an empty node of type "group". The token, if
// any, is the open parenthesis that started the group.
func NewGroup(tok *lexer.Token) *Node {
	return &Node{
		nt:       NodeTypeGroup,
		tok:      tok,
		children: []*Node{},
	}
}

// Push appends a child node to a group.
func (n *Node) Push(node *Node) error {
	if !n.IsGroup() {
		return errors.New("leaf nodes can't accept children")
	}
	n.children = append(n.children, node)
	node.p = n
	return nil
}

// PushLeaf wraps the unit as a leaf and appends it to the group
func (n *Node) PushLeaf(tok *lexer.Token) (*Node, error) {
	node := NewLeaf(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushGroup appends a new empty group to the group
func (n *Node) PushGroup(tok *lexer.Token) (*Node, error) {
	node := NewGroup(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the lexical unit associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Ident returns the identifier text of a leaf of type ident
func (n Node) Ident() string {
	return n.tok.Text()
}

// Number returns the numeric value of a leaf of type number
func (n Node) Number() float64 {
	return n.tok.Number()
}

// IsLeaf returns true if the node wraps a single lexical unit
func (n *Node) IsLeaf() bool {
	return n.nt&nodeTypeLeaf > 0
}

// IsGroup returns true if the node holds children
func (n *Node) IsGroup() bool {
	return n.nt&nodeTypeBranch > 0
}

func (n *Node) Parent() *Node {
	return n.p
}

func (n Node) String() string {
	if n.nt == NodeTypeGroup {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.children))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.tok.Text())
}

package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	switch n.Type() {

	case NodeTypeGroup:
		fmt.Fprintf(w, "%s(%s)[%d]\n", indent, n.Type(), len(n.List()))
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeNumber:
		fmt.Fprintf(w, "%s(%s): %v\n", indent, n.Type(), n.Number())

	case NodeTypeIdent:
		fmt.Fprintf(w, "%s(%s): %s\n", indent, n.Type(), n.Ident())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into text representation. The outermost group
// renders without surrounding parentheses.
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte("")
	}
	switch n.Type() {

	case NodeTypeGroup:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		if level == 0 {
			return []byte(strings.Join(nodes, " "))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeNumber, NodeTypeIdent:
		return []byte(n.Token().Text())

	default:
		panic("unknown node type")
	}
}

// CountLeaves returns the number of leaf nodes in the tree
func CountLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	total := 0
	for _, c := range n.List() {
		total += CountLeaves(c)
	}
	return total
}

// Depth returns the maximum group-nesting depth below the node. A leaf or
// an empty group has depth zero.
func Depth(n *Node) int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	max := 0
	for _, c := range n.List() {
		if !c.IsGroup() {
			continue
		}
		if d := Depth(c) + 1; d > max {
			max = d
		}
	}
	return max
}

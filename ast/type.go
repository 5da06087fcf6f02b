package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeLeaf   NodeType = 128
	nodeTypeBranch          = 256

	NodeTypeIdent  = nodeTypeLeaf | 1
	NodeTypeNumber = nodeTypeLeaf | 2

	NodeTypeGroup = nodeTypeBranch | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeIdent:  "ident",
	NodeTypeNumber: "number",
	NodeTypeGroup:  "group",
}

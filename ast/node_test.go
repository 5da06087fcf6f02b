package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpkit/sexp/lexer"
)

func TestLeafRejectsChildren(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenIdent, "car", 0)

	leaf := NewLeaf(tok)
	_, err := leaf.PushLeaf(tok)
	assert.Error(t, err)
}

func TestGroupAcceptsChildren(t *testing.T) {
	open := lexer.NewToken(lexer.TokenOpenParen, "(", 0)

	group := NewGroup(open)
	child, err := group.PushLeaf(lexer.NewToken(lexer.TokenIdent, "cdr", 1))
	require.NoError(t, err)

	assert.Equal(t, group, child.Parent())
	assert.Len(t, group.List(), 1)
	assert.Equal(t, NodeTypeIdent, child.Type())
	assert.Equal(t, "cdr", child.Ident())
}

func TestLeafTypes(t *testing.T) {
	ident := NewLeaf(lexer.NewToken(lexer.TokenIdent, "world", 0))
	assert.Equal(t, NodeTypeIdent, ident.Type())
	assert.True(t, ident.IsLeaf())
	assert.False(t, ident.IsGroup())

	num := NewLeaf(lexer.NewNumberToken("12.5", 12.5, 0))
	assert.Equal(t, NodeTypeNumber, num.Type())
	assert.True(t, num.IsLeaf())
	assert.Equal(t, 12.5, num.Number())
}

package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpkit/sexp/lexer"
)

func sampleTree(t *testing.T) *Node {
	// (car (cdr 1.5))
	root := NewGroup(nil)

	outer, err := root.PushGroup(lexer.NewToken(lexer.TokenOpenParen, "(", 0))
	require.NoError(t, err)
	_, err = outer.PushLeaf(lexer.NewToken(lexer.TokenIdent, "car", 1))
	require.NoError(t, err)

	inner, err := outer.PushGroup(lexer.NewToken(lexer.TokenOpenParen, "(", 5))
	require.NoError(t, err)
	_, err = inner.PushLeaf(lexer.NewToken(lexer.TokenIdent, "cdr", 6))
	require.NoError(t, err)
	_, err = inner.PushLeaf(lexer.NewNumberToken("1.5", 1.5, 10))
	require.NoError(t, err)

	return root
}

func TestEncode(t *testing.T) {
	root := sampleTree(t)
	assert.Equal(t, "(car (cdr 1.5))", string(Encode(root)))
}

func TestFprint(t *testing.T) {
	buf := bytes.Buffer{}
	Fprint(&buf, sampleTree(t))

	expected := "(group)[1]\n" +
		"    (group)[2]\n" +
		"        (ident): car\n" +
		"        (group)[2]\n" +
		"            (ident): cdr\n" +
		"            (number): 1.5\n"
	assert.Equal(t, expected, buf.String())
}

func TestFprintNil(t *testing.T) {
	buf := bytes.Buffer{}
	Fprint(&buf, nil)
	assert.Equal(t, ":nil\n", buf.String())
}

func TestCountLeavesAndDepth(t *testing.T) {
	root := sampleTree(t)

	assert.Equal(t, 3, CountLeaves(root))
	assert.Equal(t, 2, Depth(root))

	empty := NewGroup(nil)
	assert.Equal(t, 0, CountLeaves(empty))
	assert.Equal(t, 0, Depth(empty))
}

package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpkit/sexp/ast"
)

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`((car cdr) cdr)`))

	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, `((car cdr) cdr)`, string(ast.Encode(root)))
}

func TestParseNeverFaultsOnUnbalancedInput(t *testing.T) {
	for _, in := range []string{
		`()())))((()))`,
		`)`,
		`(((`,
		`(a b`,
	} {
		root, err := Parse([]byte(in))
		assert.NoError(t, err, "case %q", in)
		assert.NotNil(t, root, "case %q", in)
	}
}

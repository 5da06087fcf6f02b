package parser

import (
	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/lexer"
)

// DefaultMaxDepth bounds group nesting unless overridden with WithMaxDepth.
const DefaultMaxDepth = 512

// Option configures a Parser
type Option func(*Parser)

// WithStrict makes malformed input return a reportable error instead of
// silently truncating the current scope.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// WithMaxDepth overrides the maximum group nesting depth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser builds trees out of lexical units.
type Parser struct {
	strict   bool
	maxDepth int
}

// New creates a parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		maxDepth: DefaultMaxDepth,
	}
	for i := range opts {
		opts[i](p)
	}
	return p
}

// Parse parses the input with lenient defaults and returns the root group.
func Parse(src string) (*ast.Node, error) {
	return New().Parse(src)
}

// Parse consumes units from the input and returns the root group. In the
// default lenient mode malformed input truncates the current scope instead
// of failing, and a close parenthesis at top level ends the root group
// with the remainder of the input left unconsumed.
func (p *Parser) Parse(src string) (*ast.Node, error) {
	_, root, err := p.build(lexer.NewCursor(src), nil, 0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ParseAll parses the whole input as a sequence of top-level groups,
// resuming after close parentheses that Parse would abandon the remainder
// on. It stops early when the cursor stalls on a character no category
// matches.
func (p *Parser) ParseAll(src string) ([]*ast.Node, error) {
	roots := []*ast.Node{}

	c := lexer.NewCursor(src)
	for !c.Done() {
		next, root, err := p.build(c, nil, 0)
		if err != nil {
			return nil, err
		}
		if next.Offset() == c.Offset() {
			break
		}
		roots = append(roots, root)
		c = next
	}
	return roots, nil
}

// build drives the lexer over one group scope. It returns the cursor past
// the scope and the accumulated group. The open token is the parenthesis
// that started the scope, nil at top level.
func (p *Parser) build(c lexer.Cursor, open *lexer.Token, depth int) (lexer.Cursor, *ast.Node, error) {
	if depth > p.maxDepth {
		return c, nil, newParseError(ErrDepthExceeded, c.Offset())
	}

	group := ast.NewGroup(open)

	for !c.Done() {
		next, tok := lexer.Next(c)

		if tok == nil {
			if p.strict && !next.Done() {
				return next, nil, p.noMatchError(next)
			}
			// trailing whitespace, or a stray character that ends
			// this level
			c = next
			break
		}

		switch tok.Type() {

		case lexer.TokenOpenParen:
			rest, child, err := p.build(next, tok, depth+1)
			if err != nil {
				return rest, nil, err
			}
			if err := group.Push(child); err != nil {
				return rest, nil, err
			}
			c = rest

		case lexer.TokenCloseParen:
			if p.strict && open == nil {
				return next, nil, newParseError(ErrUnbalancedClose, tok.Offset())
			}
			// consumed; it closes this level and never becomes a child
			return next, group, nil

		default:
			if _, err := group.PushLeaf(tok); err != nil {
				return next, nil, err
			}
			c = next
		}
	}

	if p.strict && open != nil {
		return c, nil, newParseError(ErrUnterminatedGroup, open.Offset())
	}

	// input exhausted: the group closes implicitly
	return c, group, nil
}

func (p *Parser) noMatchError(c lexer.Cursor) error {
	if r, ok := c.Peek(); ok && lexer.StartsNumber(r) {
		return newParseError(ErrMalformedNumber, c.Offset())
	}
	return newParseError(ErrUnexpectedChar, c.Offset())
}

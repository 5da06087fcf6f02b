package lexer

import (
	"strconv"
)

// Next skips leading spaces and attempts to match one lexical unit at the
// cursor. Categories are tried in fixed order: identifier, number, open
// parenthesis, close parenthesis. It returns the advanced cursor and the
// matched unit, or the whitespace-trimmed cursor and nil when no category
// matches.
func Next(c Cursor) (Cursor, *Token) {
	c = skipSpaces(c)

	if next, tok := lexIdent(c); tok != nil {
		return next, tok
	}
	if next, tok := lexNumber(c); tok != nil {
		return next, tok
	}
	if next, tok := lexParen(c, '(', TokenOpenParen); tok != nil {
		return next, tok
	}
	if next, tok := lexParen(c, ')', TokenCloseParen); tok != nil {
		return next, tok
	}

	return c, nil
}

// Tokenize returns all the units within the input, stopping at the first
// position where no category matches.
func Tokenize(src string) []Token {
	tokens := []Token{}

	c := NewCursor(src)
	for !c.Done() {
		next, tok := Next(c)
		if tok == nil {
			break
		}
		tokens = append(tokens, *tok)
		c = next
	}
	return tokens
}

func skipSpaces(c Cursor) Cursor {
	for {
		r, ok := c.Peek()
		if !ok || !isSpace(r) {
			return c
		}
		c = c.Advance()
	}
}

func lexIdent(c Cursor) (Cursor, *Token) {
	r, ok := c.Peek()
	if !ok || !isLetter(r) {
		return c, nil
	}

	next := c.Advance()
	for {
		r, ok := next.Peek()
		if !ok || !(isLetter(r) || isDigit(r)) {
			break
		}
		next = next.Advance()
	}
	return next, NewToken(TokenIdent, c.slice(next), c.Offset())
}

// lexNumber consumes the first character unconditionally and then any run
// of digits and dots. The captured text must parse as a floating point
// literal; otherwise the match fails open and the original cursor is kept.
func lexNumber(c Cursor) (Cursor, *Token) {
	r, ok := c.Peek()
	if !ok || !StartsNumber(r) {
		return c, nil
	}

	next := c.Advance()
	for {
		r, ok := next.Peek()
		if !ok || !isNumberBody(r) {
			break
		}
		next = next.Advance()
	}

	text := c.slice(next)
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return c, nil
	}
	return next, NewNumberToken(text, num, c.Offset())
}

func lexParen(c Cursor, want byte, tt TokenType) (Cursor, *Token) {
	r, ok := c.Peek()
	if !ok || r != want {
		return c, nil
	}

	next := c.Advance()
	return next, NewToken(tt, c.slice(next), c.Offset())
}

package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit). The text
// is a subslice of the original input, never a copy.
type Token struct {
	tt   TokenType
	text string
	num  float64

	off int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string, off int) *Token {
	return &Token{
		tt:   tt,
		text: text,
		off:  off,
	}
}

// NewNumberToken creates a lexical unit of type number
func NewNumberToken(text string, num float64, off int) *Token {
	return &Token{
		tt:   TokenNumber,
		text: text,
		num:  num,
		off:  off,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.text
}

// Number returns the numeric value of a unit of type number
func (t Token) Number() float64 {
	return t.num
}

// Offset returns the byte offset of the lexical unit within the input
func (t Token) Offset() int {
	return t.off
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.text, t.off)
}

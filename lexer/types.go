package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenIdent                // Letter followed by letters or digits
	TokenNumber               // Floating point literal
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenIdent:      "ident",
	TokenNumber:     "number",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isSpace(r byte) bool {
	return r == ' '
}

func isLetter(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

// StartsNumber reports whether r can begin a number unit.
func StartsNumber(r byte) bool {
	return r == '+' || r == '-' || r == '.' || isDigit(r)
}

func isNumberBody(r byte) bool {
	return r == '.' || isDigit(r)
}

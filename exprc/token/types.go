package token

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	NUMBER
	IDENT

	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

var typeNames = [...]string{
	ILLEGAL: "illegal",
	EOF:     "end of input",
	NUMBER:  "number",
	IDENT:   "identifier",
	PLUS:    "'+'",
	MINUS:   "'-'",
	STAR:    "'*'",
	SLASH:   "'/'",
	LPAREN:  "'('",
	RPAREN:  "')'",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

var SingleSymbols = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'(': LPAREN,
	')': RPAREN,
}

package token

import "fmt"

type Token struct {
	Type   TokenType
	Pos    Pos    // Position of first character in token
	EndPos Pos    // Position of character immediately after token
	Lexeme string // The token as a string literal
	Length int    // The character length of the token

	// If the token is EOF. Always true if the type is EOF and
	// vice versa. Simply a shorthand for tok.Type == token.EOF.
	Eof bool
}

func (t Token) String() string {
	return fmt.Sprintf("{%s '%s' c:%d r:%d}", t.Type, t.Lexeme, t.Pos.Col, t.Pos.Row)
}

type Pos struct {
	Col    int   // Column in line
	Row    int   // Row in file, same as line number -1
	Offset int   // Byte offset in file
	File   *File // File this position refers to
}

func (p Pos) String() string {
	if p.File != nil && p.File.Name != "" {
		return fmt.Sprintf("%s:%d:%d", p.File.Name, p.Row+1, p.Col+1)
	}
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

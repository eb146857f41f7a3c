package scanner

import (
	"github.com/jesperkha/exprc/exprc/token"
)

type Scanner struct {
	file   *token.File
	text   []byte
	row    int
	offset int
	err    *token.Error // Set on first bad character, returned from then on
}

// New makes a new Scanner object for the given file. The text is the raw text
// of a single line, row is its line number -1 in file. Scanner only accepts
// ascii text. file may be nil for input that does not come from a file.
func New(file *token.File, row int, text []byte) *Scanner {
	return &Scanner{
		file: file,
		text: text,
		row:  row,
	}
}

// Scan consumes the next token and returns it, advancing the Scanner. At the
// end of input it returns an EOF token, repeatedly if called again. An
// unrecognized character makes the rest of the line unscannable.
func (s *Scanner) Scan() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}

	s.skipWhitespace()
	if s.eof() {
		return s.token(token.EOF, s.offset), nil
	}

	start := s.offset
	c := s.cur()

	switch {
	case isNum(c):
		s.scanNumber()
		return s.token(token.NUMBER, start), nil

	case isAlpha(c):
		s.scanIdent()
		return s.token(token.IDENT, start), nil
	}

	if typ, ok := token.SingleSymbols[c]; ok {
		s.consume()
		return s.token(typ, start), nil
	}

	s.err = token.ErrorAt(token.UnrecognizedCharacter, s.pos(start),
		"unrecognized character '%c' at offset %d", c, start)
	s.err.Char = c
	return token.Token{}, s.err
}

// ScanAll scans the whole input, returning all tokens up to and including
// EOF. Stops at the first error.
func (s *Scanner) ScanAll() ([]token.Token, error) {
	toks := []token.Token{}
	for {
		tok, err := s.Scan()
		if err != nil {
			return toks, err
		}

		toks = append(toks, tok)
		if tok.Eof {
			return toks, nil
		}
	}
}

// Digits, then optionally a dot and more digits. A dot with no digits
// following it is still part of the literal.
func (s *Scanner) scanNumber() {
	for !s.eof() && isNum(s.cur()) {
		s.consume()
	}

	if !s.eof() && s.cur() == '.' {
		s.consume()
		for !s.eof() && isNum(s.cur()) {
			s.consume()
		}
	}
}

func (s *Scanner) scanIdent() {
	for !s.eof() && (isAlpha(s.cur()) || isNum(s.cur())) {
		s.consume()
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.eof() && isWhitespace(s.cur()) {
		s.consume()
	}
}

func (s *Scanner) token(typ token.TokenType, start int) token.Token {
	lexeme := string(s.text[start:s.offset])
	return token.Token{
		Type:   typ,
		Pos:    s.pos(start),
		EndPos: s.pos(s.offset),
		Lexeme: lexeme,
		Length: len(lexeme),
		Eof:    typ == token.EOF,
	}
}

func (s *Scanner) pos(offset int) token.Pos {
	base := 0
	if s.file != nil && s.row < len(s.file.Lines) {
		base = s.file.Lines[s.row]
	}

	return token.Pos{
		Col:    offset,
		Row:    s.row,
		Offset: base + offset,
		File:   s.file,
	}
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.text)
}

func (s *Scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.offset]
}

func (s *Scanner) peek() byte {
	if s.offset+1 >= len(s.text) {
		return 0
	}
	return s.text[s.offset+1]
}

func (s *Scanner) consume() byte {
	c := s.cur()
	s.offset++
	return c
}

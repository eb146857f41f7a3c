package token

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnrecognizedCharacter ErrorKind = iota + 1
	UnexpectedToken
	MalformedAtom
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case UnexpectedToken:
		return "unexpected token"
	case MalformedAtom:
		return "malformed atom"
	}
	return "unknown error"
}

// Sentinel values for matching with errors.Is. Only the Kind is compared.
var (
	ErrUnrecognizedCharacter = &Error{Kind: UnrecognizedCharacter}
	ErrUnexpectedToken       = &Error{Kind: UnexpectedToken}
	ErrMalformedAtom         = &Error{Kind: MalformedAtom}
)

// Error is returned by the scanner and parser. Any Error aborts the current
// line, there is no recovery.
type Error struct {
	Kind ErrorKind
	Pos  Pos
	Msg  string

	// Set for UnrecognizedCharacter.
	Char byte

	// Set for UnexpectedToken.
	Expected TokenType
	Found    TokenType
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func ErrorAt(kind ErrorKind, pos Pos, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Pos:  pos,
		Msg:  fmt.Sprintf(format, args...),
	}
}

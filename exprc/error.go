package exprc

import "github.com/jesperkha/exprc/exprc/token"

// Error is the error returned for bad input by every stage of the pipeline.
// Use errors.Is with the Err* values to check the kind.
type (
	Error     = token.Error
	ErrorKind = token.ErrorKind
)

const (
	UnrecognizedCharacter = token.UnrecognizedCharacter
	UnexpectedToken       = token.UnexpectedToken
	MalformedAtom         = token.MalformedAtom
)

var (
	ErrUnrecognizedCharacter = token.ErrUnrecognizedCharacter
	ErrUnexpectedToken       = token.ErrUnexpectedToken
	ErrMalformedAtom         = token.ErrMalformedAtom
)

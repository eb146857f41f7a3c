package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jesperkha/exprc/exprc/token"
)

type ErrorHandler struct {
	errs []error
}

func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

func (e *ErrorHandler) Add(err error) {
	e.errs = append(e.errs, err)
}

func (e *ErrorHandler) Errors() []error {
	return e.errs
}

func (e *ErrorHandler) NumErrors() int {
	return len(e.errs)
}

// Error joins all accumulated errors, nil if there are none.
func (e *ErrorHandler) Error() error {
	return errors.Join(e.errs...)
}

// Pretty adds err rendered with the source line it occurred on and a caret
// under the offending column. Errors that carry no position are added as is.
func (e *ErrorHandler) Pretty(err error, lineStr string) {
	var terr *token.Error
	if !errors.As(err, &terr) {
		e.Add(err)
		return
	}

	e.Add(fmt.Errorf("%s", Pretty(terr, lineStr)))
}

// Pretty renders a positioned error, eg.
//
//	error: unrecognized character '@' at offset 2
//	  1 | 2 @ 3
//	    |   ^
func Pretty(err *token.Error, lineStr string) string {
	col := max(err.Pos.Col, 0)
	col = min(col, len(lineStr))

	s := ""
	s += fmt.Sprintf("error: %s\n", err.Msg)
	s += fmt.Sprintf("%3d | %s\n", err.Pos.Row+1, lineStr)
	s += fmt.Sprintf("    | %s^", strings.Repeat(" ", col))
	return s
}

package util

import "fmt"

// Assert panics with the formatted message if v is false. Only used for
// invariants that no input can break.
func Assert(v bool, format string, args ...any) {
	if !v {
		panic("internal error: " + fmt.Sprintf(format, args...))
	}
}

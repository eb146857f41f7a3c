package scanner

import "strings"

func isAlpha(c byte) bool {
	return c != 0 && strings.IndexByte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_", c) >= 0
}

func isNum(c byte) bool {
	return c != 0 && strings.IndexByte("0123456789", c) >= 0
}

func isWhitespace(c byte) bool {
	return c != 0 && strings.IndexByte("\n\t\r\v\f ", c) >= 0
}

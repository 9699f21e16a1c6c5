package strutil

import (
	"strings"
	"unicode"
)

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !isWhitespace(r) }) < 0
}

// isWhitespace excludes no-break spaces and NEL, which unicode.IsSpace accepts.
func isWhitespace(r rune) bool {
	switch {
	case r == '\u00a0', r == '\u2007', r == '\u202f':
		return false
	case r >= '\t' && r <= '\r', r >= '\x1c' && r <= '\x1f':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

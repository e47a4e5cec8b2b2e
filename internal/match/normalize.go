package match

import (
	"strings"
	"unicode"
)

// Normalize folds a name for fuzzy matching: it lowercases the input and drops
// separators, so "UInt32", "uint_32" and "u.int32" all compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

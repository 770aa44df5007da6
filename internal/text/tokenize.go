package text

import (
	"iter"
	"slices"
	"unicode"
)

// isWordRune reports whether r belongs inside a token: letters, numbers and
// underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokens returns a lazy left-to-right sequence of the maximal word-character
// runs in s. The sequence is finite and restartable: it is a pure function of
// s and may be ranged over any number of times. Empty tokens are never
// emitted.
func Tokens(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range s {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(s[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(s[start:])
		}
	}
}

// TokenList collects Tokens(s) into a slice.
func TokenList(s string) []string {
	return slices.Collect(Tokens(s))
}

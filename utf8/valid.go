// Package utf8 validates and decodes text before code-point searches.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/kmp/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	if ascii.ValidString(s) {
		return true
	}

	return stdlib.ValidString(s[ascii.IndexNonASCII(s):])
}

// Runes decodes s into code points. Invalid bytes decode as
// utf8.RuneError, one per byte, so callers should check ValidString first
// when that matters.
func Runes(s string) []rune {
	if ascii.ValidString(s) {
		r := make([]rune, len(s))
		for i := 0; i < len(s); i++ {
			r[i] = rune(s[i])
		}
		return r
	}
	return []rune(s)
}

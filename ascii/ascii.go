// Package ascii provides the ASCII case-folding primitives used by the
// case-insensitive KMP matcher. Only the letters A-Z and a-z fold; every
// other byte, including non-ASCII bytes, compares exactly.
package ascii

import (
	segAscii "github.com/segmentio/asm/ascii"
)

// LowerTable maps every byte to its ASCII lowercase form.
// Bytes outside A-Z map to themselves.
var LowerTable = func() (t [256]byte) {
	for i := range t {
		t[i] = toLower(byte(i))
	}
	return t
}()

// IdentityTable maps every byte to itself. Matchers use it in place of
// LowerTable when searching case-sensitively.
var IdentityTable = func() (t [256]byte) {
	for i := range t {
		t[i] = byte(i)
	}
	return t
}()

// ValidString reports whether s contains only 7-bit ASCII bytes.
func ValidString(s string) bool {
	return segAscii.ValidString(s)
}

// IndexNonASCII returns the index of the first byte with the high bit set,
// or -1 if s is pure ASCII.
func IndexNonASCII(s string) int {
	return indexMaskGo(s, 0x80)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) < 32 {
		return equalFoldGo(a, b)
	}
	return segAscii.EqualFoldString(a, b)
}

// Normalize returns s with every ASCII uppercase letter lowered.
// s is returned unchanged (without allocation) when it has no uppercase letters.
func Normalize(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			goto normalize
		}
	}
	return s

normalize:
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = toLower(s[i])
	}
	return string(b)
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}

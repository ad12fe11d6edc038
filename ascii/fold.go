package ascii

import "math/bits"

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			first32 &= mask32
			if first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			second32 &= mask32
			return pos + 4 + bits.TrailingZeros32(second32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

// based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func hasUppercaseAsciiByte(x uint64) uint64 {
	const mult = ^uint64(0) / 255
	const m, n = 'A' - 1, 'Z' + 1

	A := mult * (127 + n)
	B := x & (mult * 127)
	C := ^x
	D := mult * (127 - m)
	return (A - B) & C & (B + D) & (mult * 128)
}

// lowerWord folds the eight bytes of x to lowercase in one step.
func lowerWord(x uint64) uint64 {
	mask := hasUppercaseAsciiByte(x)
	mask >>= 2
	return x + mask
}

func equalFoldGo(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		_ = a[7]
		_ = b[7]

		a64 := uint64(a[0]) | uint64(a[1])<<8 | uint64(a[2])<<16 | uint64(a[3])<<24 |
			uint64(a[4])<<32 | uint64(a[5])<<40 | uint64(a[6])<<48 | uint64(a[7])<<56
		b64 := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
			uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56

		if a64 != b64 && lowerWord(a64) != lowerWord(b64) {
			return false
		}
		a = a[8:]
		b = b[8:]
	}

	for i := 0; i < len(a); i++ {
		if toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

// IndexFold is a plain case-insensitive scan: it tries every alignment and
// compares with EqualFold. Tests use it as the reference for folded KMP
// searches.
func IndexFold(s, substr string) int {
	if len(substr) == 0 {
		return 0
	} else if len(substr) > len(s) {
		return -1
	}

	first := toLower(substr[0])
	for i := 0; i <= len(s)-len(substr); i++ {
		if toLower(s[i]) == first && equalFoldGo(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

// Package bytealg holds the brute-force reference scans that KMP results
// are checked against.
package bytealg

// Index finds the first case-sensitive match of needle in haystack by
// trying every alignment, O(len(haystack)*len(needle)).
// An empty needle matches at 0.
func Index[S ~string | ~[]byte](haystack, needle S) int {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		j := 0
		for j < n && haystack[i+j] == needle[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}

// IndexFunc is Index over an arbitrary comparable alphabet.
func IndexFunc[E comparable](haystack, needle []E) int {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		j := 0
		for j < n && haystack[i+j] == needle[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}

// IndexAll returns every start position of needle in haystack, overlapping
// matches included. An empty needle yields nil.
func IndexAll[S ~string | ~[]byte](haystack, needle S) []int {
	if len(needle) == 0 {
		return nil
	}
	var all []int
	for off := 0; off < len(haystack); {
		i := Index(haystack[off:], needle)
		if i < 0 {
			break
		}
		all = append(all, off+i)
		off += i + 1
	}
	return all
}

// Border returns the length of the longest proper prefix of s that is
// also a suffix of s, by direct comparison.
func Border[S ~string | ~[]byte](s S) int {
	for l := len(s) - 1; l > 0; l-- {
		if string(s[:l]) == string(s[len(s)-l:]) {
			return l
		}
	}
	return 0
}

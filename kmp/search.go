package kmp

import "github.com/mhr3/kmp/ascii"

// NotFound is the position reported when the pattern does not occur.
const NotFound = -1

// Result is the outcome of a single search.
type Result struct {
	// Pos is the start of the first occurrence, or NotFound.
	Pos int
	// Ops counts symbol comparisons and table lookups, table construction
	// included. It is a cost metric only.
	Ops int
}

// Found reports whether the search located the pattern.
func (r Result) Found() bool {
	return r.Pos != NotFound
}

// Search builds the failure table of pattern and scans text once for its
// first occurrence. An empty pattern never matches.
func Search[S ~string | ~[]byte](text, pattern S) Result {
	if len(pattern) == 0 {
		return Result{Pos: NotFound}
	}
	table, buildOps := buildTable(pattern)
	pos, scanOps := scanFirst(text, pattern, table, &ascii.IdentityTable)
	return Result{Pos: pos, Ops: buildOps + scanOps}
}

// Index returns the start of the first occurrence of pattern in text,
// or NotFound.
func Index[S ~string | ~[]byte](text, pattern S) int {
	return Search(text, pattern).Pos
}

// scan runs the matcher state machine over text. Text bytes pass through
// fold before comparison; pattern must already be folded the same way.
// Each completed match is handed to yield, and scanning stops once yield
// returns false. It returns the number of operations performed.
//
// The state k is the length of the pattern prefix matched so far. On a
// mismatch k falls back through the table without moving i, so every text
// byte is visited exactly once.
func scan[T, P ~string | ~[]byte](text T, pattern P, table Table, fold *[256]byte, yield func(pos int) bool) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	ops := 0
	k := 0
	for i := 0; i < len(text); i++ {
		c := fold[text[i]]
		for k > 0 && pattern[k] != c {
			k = table[k-1]
			ops++
		}
		if pattern[k] == c {
			k++
		}
		ops++
		if k == m {
			if !yield(i - m + 1) {
				return ops
			}
			k = table[k-1]
			ops++
		}
	}
	return ops
}

func scanFirst[T, P ~string | ~[]byte](text T, pattern P, table Table, fold *[256]byte) (int, int) {
	pos := NotFound
	ops := scan(text, pattern, table, fold, func(p int) bool {
		pos = p
		return false
	})
	return pos, ops
}

func scanAll[T, P ~string | ~[]byte](text T, pattern P, table Table, fold *[256]byte) []int {
	var all []int
	scan(text, pattern, table, fold, func(p int) bool {
		all = append(all, p)
		return true
	})
	return all
}

package kmp

// Table is the failure (prefix-function) table of a pattern: Table[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also a suffix
// of it. Table[0] is always 0 and Table[i] <= i.
type Table []int

// BuildTable computes the failure table of pattern in O(len(pattern)).
// The empty pattern yields an empty table.
func BuildTable[S ~string | ~[]byte](pattern S) Table {
	t, _ := buildTable(pattern)
	return t
}

// BuildTableFunc is BuildTable for patterns over an arbitrary alphabet.
func BuildTableFunc[E comparable](pattern []E) Table {
	t, _ := buildTableFunc(pattern)
	return t
}

// buildTable returns the table and the number of operations spent: one per
// outer index plus one per fallback step.
func buildTable[S ~string | ~[]byte](pattern S) (Table, int) {
	return buildTableEq(len(pattern), func(i, j int) bool { return pattern[i] == pattern[j] })
}

func buildTableFunc[E comparable](pattern []E) (Table, int) {
	return buildTableEq(len(pattern), func(i, j int) bool { return pattern[i] == pattern[j] })
}

// buildTableEq builds the table of a pattern of length m whose symbols at
// i and j compare equal under eq.
func buildTableEq(m int, eq func(i, j int) bool) (Table, int) {
	table := make(Table, m)
	ops := 0
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && !eq(k, i) {
			k = table[k-1]
			ops++
		}
		if eq(k, i) {
			k++
		}
		table[i] = k
		ops++
	}
	return table, ops
}

// Valid reports whether t is structurally a failure table for a pattern of
// length m: t[0] == 0 and each entry grows by at most one over its
// predecessor.
func (t Table) Valid(m int) bool {
	if len(t) != m {
		return false
	}
	for i, v := range t {
		if i == 0 {
			if v != 0 {
				return false
			}
			continue
		}
		if v < 0 || v > t[i-1]+1 {
			return false
		}
	}
	return true
}

// Period returns the smallest period of the pattern the table was built
// from, i.e. len - Table[len-1]. It returns 0 for an empty table.
func (t Table) Period() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - t[len(t)-1]
}

package kmp

// SliceMatcher is Matcher for patterns over an arbitrary comparable
// alphabet, such as []rune for code-point matching.
type SliceMatcher[E comparable] struct {
	pattern  []E
	table    Table
	buildOps int
}

// NewSliceMatcher creates a SliceMatcher for pattern. The pattern is
// copied, so the caller may reuse its slice.
func NewSliceMatcher[E comparable](pattern []E) SliceMatcher[E] {
	p := make([]E, len(pattern))
	copy(p, pattern)
	table, ops := buildTableFunc(p)
	return SliceMatcher[E]{pattern: p, table: table, buildOps: ops}
}

// SearchFunc is Search over an arbitrary comparable alphabet.
func SearchFunc[E comparable](text, pattern []E) Result {
	if len(pattern) == 0 {
		return Result{Pos: NotFound}
	}
	table, buildOps := buildTableFunc(pattern)
	pos, scanOps := scanFirstFunc(text, pattern, table)
	return Result{Pos: pos, Ops: buildOps + scanOps}
}

// Len returns the pattern length.
func (m SliceMatcher[E]) Len() int {
	return len(m.pattern)
}

// Table returns a copy of the failure table.
func (m SliceMatcher[E]) Table() Table {
	t := make(Table, len(m.table))
	copy(t, m.table)
	return t
}

// Find scans text for the first occurrence of the pattern.
func (m SliceMatcher[E]) Find(text []E) Result {
	if len(m.pattern) == 0 {
		return Result{Pos: NotFound}
	}
	pos, ops := scanFirstFunc(text, m.pattern, m.table)
	return Result{Pos: pos, Ops: m.buildOps + ops}
}

// Index returns the start of the first occurrence, or NotFound.
func (m SliceMatcher[E]) Index(text []E) int {
	return m.Find(text).Pos
}

// IndexAll returns the start of every (possibly overlapping) occurrence.
func (m SliceMatcher[E]) IndexAll(text []E) []int {
	var all []int
	scanFunc(text, m.pattern, m.table, func(p int) bool {
		all = append(all, p)
		return true
	})
	return all
}

// scanFunc is scan for generic alphabets. It stays a separate loop because
// scan folds each byte through a lookup table and indexes strings without
// conversion, and routing either path through a comparison callback would
// add a call per text symbol to the timed loop.
func scanFunc[E comparable](text, pattern []E, table Table, yield func(pos int) bool) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	ops := 0
	k := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
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

func scanFirstFunc[E comparable](text, pattern []E, table Table) (int, int) {
	pos := NotFound
	ops := scanFunc(text, pattern, table, func(p int) bool {
		pos = p
		return false
	})
	return pos, ops
}

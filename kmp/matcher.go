package kmp

import (
	"errors"

	"github.com/mhr3/kmp/ascii"
)

// ErrInvalidTable is returned by NewMatcherTable when the supplied table
// cannot belong to the supplied pattern.
var ErrInvalidTable = errors.New("kmp: invalid failure table")

// Matcher performs repeated searches for one pattern.
// Construct once with NewMatcher, then call Find or Index on many texts;
// the failure table is computed a single time. A Matcher is immutable and
// safe for concurrent use.
type Matcher struct {
	raw      string     // original pattern
	norm     string     // pattern as compared against text (lowercased when folding)
	table    Table      // failure table of norm
	buildOps int        // operations spent building table
	fold     *[256]byte // text byte mapping applied before comparison
}

// NewMatcher creates a Matcher for pattern.
// If caseSensitive is false, ASCII letters match regardless of case.
func NewMatcher(pattern string, caseSensitive bool) Matcher {
	norm := pattern
	fold := &ascii.IdentityTable
	if !caseSensitive {
		norm = ascii.Normalize(pattern)
		fold = &ascii.LowerTable
	}
	table, ops := buildTable(norm)
	return Matcher{
		raw:      pattern,
		norm:     norm,
		table:    table,
		buildOps: ops,
		fold:     fold,
	}
}

// NewMatcherTable creates a case-sensitive Matcher from a table computed
// earlier with BuildTable, skipping construction. The table is checked for
// structural validity only; passing the table of a different pattern gives
// wrong positions but never panics.
func NewMatcherTable(pattern string, table Table) (Matcher, error) {
	if !table.Valid(len(pattern)) {
		return Matcher{}, ErrInvalidTable
	}
	t := make(Table, len(table))
	copy(t, table)
	return Matcher{
		raw:   pattern,
		norm:  pattern,
		table: t,
		fold:  &ascii.IdentityTable,
	}, nil
}

// Pattern returns the pattern the Matcher was built for.
func (m Matcher) Pattern() string {
	return m.raw
}

// Table returns a copy of the failure table.
func (m Matcher) Table() Table {
	t := make(Table, len(m.table))
	copy(t, m.table)
	return t
}

// BuildOps returns the operations spent building the table. It is zero for
// Matchers created from a precomputed table.
func (m Matcher) BuildOps() int {
	return m.buildOps
}

// CaseSensitive reports whether the Matcher compares bytes exactly.
func (m Matcher) CaseSensitive() bool {
	return m.fold != &ascii.LowerTable
}

// Find scans text for the first occurrence of the pattern.
// Result.Ops includes the table construction cost.
func (m Matcher) Find(text string) Result {
	return find(m, text)
}

// FindBytes is Find for a byte slice.
func (m Matcher) FindBytes(text []byte) Result {
	return find(m, text)
}

// Index returns the start of the first occurrence of the pattern in text,
// or NotFound.
func (m Matcher) Index(text string) int {
	return find(m, text).Pos
}

// IndexAll returns the start of every occurrence of the pattern in text,
// overlapping ones included, in increasing order.
func (m Matcher) IndexAll(text string) []int {
	if len(m.norm) == 0 || m.fold == nil {
		return nil
	}
	return scanAll(text, m.norm, m.table, m.fold)
}

func find[T ~string | ~[]byte](m Matcher, text T) Result {
	if len(m.norm) == 0 || m.fold == nil {
		return Result{Pos: NotFound}
	}
	pos, ops := scanFirst(text, m.norm, m.table, m.fold)
	return Result{Pos: pos, Ops: m.buildOps + ops}
}

package kmp

import (
	"strings"
	"testing"

	"github.com/mhr3/kmp/ascii"
	"github.com/mhr3/kmp/internal/bytealg"
)

// FuzzSearch checks every search entry point against the brute-force scan.
func FuzzSearch(f *testing.F) {
	f.Add("ABABDABACDABABCABAB", "ABABCABAB")
	f.Add("AAAAAA", "AAA")
	f.Add("hello world", "xyz")
	f.Add("", "a")
	f.Add("abc", "")
	f.Add(strings.Repeat("a", 100)+"aab", "aab")
	f.Add("Hello World", "o w")

	f.Fuzz(func(t *testing.T, text, pattern string) {
		want := bytealg.Index(text, pattern)
		if pattern == "" {
			want = NotFound
		}

		res := Search(text, pattern)
		if res.Pos != want {
			t.Fatalf("Search(%q, %q).Pos = %d, want %d", text, pattern, res.Pos, want)
		}
		if limit := 2 * (len(text) + len(pattern)); res.Ops > limit {
			t.Fatalf("Search(%q, %q) spent %d ops, want <= %d", text, pattern, res.Ops, limit)
		}

		m := NewMatcher(pattern, true)
		if got := m.Find(text); got != res {
			t.Fatalf("Matcher.Find(%q) = %+v, want %+v", text, got, res)
		}
		if got := SearchFunc([]byte(text), []byte(pattern)); got != res {
			t.Fatalf("SearchFunc(%q, %q) = %+v, want %+v", text, pattern, got, res)
		}

		wantFold := ascii.IndexFold(text, pattern)
		if pattern == "" {
			wantFold = NotFound
		}
		if got := NewMatcher(pattern, false).Index(text); got != wantFold {
			t.Fatalf("NewMatcher(%q, false).Index(%q) = %d, want %d", pattern, text, got, wantFold)
		}
	})
}

// FuzzBuildTable checks table entries against direct border computation.
func FuzzBuildTable(f *testing.F) {
	f.Add("aaab")
	f.Add("ABABCABAB")
	f.Add("")

	f.Fuzz(func(t *testing.T, pattern string) {
		if len(pattern) > 256 {
			pattern = pattern[:256]
		}
		table := BuildTable(pattern)
		if !table.Valid(len(pattern)) {
			t.Fatalf("BuildTable(%q) = %v is not a valid table", pattern, table)
		}
		for i := range table {
			if want := bytealg.Border(pattern[:i+1]); table[i] != want {
				t.Fatalf("BuildTable(%q)[%d] = %d, want %d", pattern, i, table[i], want)
			}
		}
	})
}

package kmp

import (
	"strings"
	"testing"
)

type benchCase struct {
	scenario, size, text, pattern string
}

func benchCases() []benchCase {
	return []benchCase{
		{"notfound", "1KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 43), "quartz"},
		{"notfound", "64KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 2730), "quartz"},
		{"match_end", "64KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 2728) + "xylophone", "xylophone"},
		{"match_start", "1KB", "xylophone" + strings.Repeat("abcdefghijklmnoprstuvwy ", 42), "xylophone"},
		{"periodic", "1KB", strings.Repeat("abcd", 250) + "abce", "abce"},
		{"samechar", "64KB", strings.Repeat("a", 64000) + "aab", "aab"},
		{"worstcase", "64KB", strings.Repeat("a", 64000), strings.Repeat("a", 63) + "b"},
		{"json", "64KB", strings.Repeat(`{"k":"v"},`, 6500) + `{"num":1}`, `"num"`},
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, bc := range benchCases() {
		b.Run(bc.scenario+"/"+bc.size, func(b *testing.B) {
			b.SetBytes(int64(len(bc.text)))
			for i := 0; i < b.N; i++ {
				Search(bc.text, bc.pattern)
			}
		})
	}
}

func BenchmarkMatcher(b *testing.B) {
	for _, bc := range benchCases() {
		for _, cs := range []bool{true, false} {
			name := bc.scenario + "/" + bc.size + "/fold"
			if cs {
				name = bc.scenario + "/" + bc.size + "/exact"
			}
			m := NewMatcher(bc.pattern, cs)
			b.Run(name, func(b *testing.B) {
				b.SetBytes(int64(len(bc.text)))
				for i := 0; i < b.N; i++ {
					m.Find(bc.text)
				}
			})
		}
	}
}

func BenchmarkStringsIndex(b *testing.B) {
	for _, bc := range benchCases() {
		b.Run(bc.scenario+"/"+bc.size, func(b *testing.B) {
			b.SetBytes(int64(len(bc.text)))
			for i := 0; i < b.N; i++ {
				strings.Index(bc.text, bc.pattern)
			}
		})
	}
}

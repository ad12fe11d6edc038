// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// algorithm.
//
// A search first builds the pattern's failure table (BuildTable), then scans
// the text once, never moving backwards over it. Total work is O(n+m) for a
// text of length n and a pattern of length m.
//
// One-shot searches use Search or Index. When the same pattern is searched
// in many texts, build a Matcher once and reuse it:
//
//	m := kmp.NewMatcher("needle", true)
//	for _, doc := range docs {
//		if r := m.Find(doc); r.Found() {
//			fmt.Println(r.Pos, r.Ops)
//		}
//	}
//
// Only the first occurrence is reported by Find; IndexAll continues past
// each match and returns every (possibly overlapping) start position.
//
// The empty pattern never matches: Search(text, "") reports NotFound for
// every text, unlike strings.Index which returns 0.
package kmp

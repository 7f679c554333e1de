package filemeta

import (
	"sort"
	"strings"
	"unicode"
)

// tokenStopwords are dropped from filename tokens.
var tokenStopwords = map[string]struct{}{
	"in": {}, "on": {}, "at": {}, "to": {}, "of": {},
	"an": {}, "is": {}, "by": {}, "as": {},
}

// Tokenize splits a filename into lowercase word tokens for the inverted
// index. One trailing extension is stripped, the rest is split on
// non-alphanumeric runs, and each run is further split at camelCase and
// ACRONYM boundaries. Tokens of length <=1 and stopwords are dropped.
//
// The boundary rule emits letter runs only, so digit-adjacent residue such
// as "Q1" contributes no token: "Q1_Report.xlsx" tokenizes to {"report"}.
//
// The result is a sorted, duplicate-free slice. Deterministic and pure.
func Tokenize(name string) []string {
	base := name
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}

	set := make(map[string]struct{})
	for _, part := range splitNonAlnum(base) {
		for _, tok := range splitWordBoundaries(part) {
			t := strings.ToLower(tok)
			if len(t) <= 1 {
				continue
			}
			if _, stop := tokenStopwords[t]; stop {
				continue
			}
			set[t] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// splitNonAlnum splits a string into maximal ASCII-alphanumeric runs.
func splitNonAlnum(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
}

// splitWordBoundaries splits an alphanumeric run into word-like subtokens:
// an optional capital followed by a lowercase run forms a word, and an
// all-caps run is kept only up to the point where it is followed by another
// capital or the end of the run. Digits are skipped and never emitted, and
// a caps run cut short by a digit loses its final capital ("XML2" -> "XM").
func splitWordBoundaries(part string) []string {
	runes := []rune(part)
	var words []string

	i := 0
	for i < len(runes) {
		switch {
		case unicode.IsLower(runes[i]):
			j := i
			for j < len(runes) && unicode.IsLower(runes[j]) {
				j++
			}
			words = append(words, string(runes[i:j]))
			i = j

		case unicode.IsUpper(runes[i]):
			j := i
			for j < len(runes) && unicode.IsUpper(runes[j]) {
				j++
			}
			n := j - i
			switch {
			case j < len(runes) && unicode.IsLower(runes[j]):
				// Last capital starts the next word.
				if n > 1 {
					words = append(words, string(runes[i:j-1]))
				}
				k := j
				for k < len(runes) && unicode.IsLower(runes[k]) {
					k++
				}
				words = append(words, string(runes[j-1:k]))
				i = k
			case j == len(runes):
				words = append(words, string(runes[i:j]))
				i = j
			default:
				// Caps run followed by a digit: final capital is dropped.
				if n > 1 {
					words = append(words, string(runes[i:j-1]))
				}
				i = j
			}

		default:
			i++
		}
	}

	return words
}

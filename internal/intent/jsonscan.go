package intent

import (
	"encoding/json"
	"strings"
)

// Language models often wrap the requested JSON in explanation text. The
// scanners below pull every balanced bracket substring out of a response so
// the parser can try them in the order most likely to contain the answer:
// models tend to explain first and answer last, so objects are tried
// last-to-first, while the keyword prompt's format example makes the first
// array the answer, so arrays are tried first-to-last. The asymmetry is
// inherited behavior, kept deliberately.

// decodeLastObject attempts a strict parse of the whole response, then
// tries each balanced {...} substring from last to first. Returns false
// when nothing parses.
func decodeLastObject(response string, v any) bool {
	trimmed := strings.TrimSpace(response)
	if json.Unmarshal([]byte(trimmed), v) == nil {
		return true
	}
	candidates := balancedSubstrings(response, '{', '}')
	for i := len(candidates) - 1; i >= 0; i-- {
		if json.Unmarshal([]byte(candidates[i]), v) == nil {
			return true
		}
	}
	return false
}

// decodeFirstArray attempts a strict parse of the whole response, then
// tries each balanced [...] substring from first to last. Non-string
// elements are dropped. Returns nil when nothing parses.
func decodeFirstArray(response string) []string {
	trimmed := strings.TrimSpace(response)
	if out, ok := stringElements(trimmed); ok {
		return out
	}
	for _, candidate := range balancedSubstrings(response, '[', ']') {
		if out, ok := stringElements(candidate); ok {
			return out
		}
	}
	return nil
}

func stringElements(candidate string) ([]string, bool) {
	var raw []any
	if json.Unmarshal([]byte(candidate), &raw) != nil {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		if s, ok := el.(string); ok {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out, true
}

// balancedSubstrings returns every balanced open...close substring of s,
// in order of their opening byte. Nested pairs produce only the outermost
// substring; unbalanced openers are skipped.
func balancedSubstrings(s string, open, close byte) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		if s[i] != open {
			continue
		}
		depth := 0
		end := -1
		for j := i; j < len(s); j++ {
			switch s[j] {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					end = j
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			continue
		}
		out = append(out, s[i:end+1])
		i = end
	}
	return out
}

package assemble

import "strings"

// Word-window chunking parameters. Windows overlap so sentences spanning
// a boundary appear whole in at least one chunk.
const (
	chunkSize    = 500
	chunkOverlap = 100
)

// chunkWords splits text into overlapping windows of whitespace-separated
// words. Empty or whitespace-only text yields no chunks.
func chunkWords(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := size - overlap
	var out []string
	for i := 0; i < len(words); i += step {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		out = append(out, strings.Join(words[i:end], " "))
		if end == len(words) {
			break
		}
	}
	return out
}

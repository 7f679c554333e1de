package filemeta

import "strings"

// BuildQuerySentence renders a metadata record (or an extracted query
// intent) into the canonical text form used for embedding. The field order
// and punctuation are fixed: the embedding model is sensitive to phrasing
// consistency, and the same template must be used at indexing time and at
// query time. Empty inputs render as empty fields, never omitted.
func BuildQuerySentence(name, ftype, date string, words []string) string {
	parts := []string{
		field("File", name),
		field("Type", ftype),
		field("Modified", date),
		field("Keywords", strings.Join(words, ", ")),
	}
	return strings.Join(parts, " ")
}

func field(label, value string) string {
	if value == "" {
		return label + ": ;"
	}
	return label + ": " + value + ";"
}

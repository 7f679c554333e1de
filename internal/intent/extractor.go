// Package intent extracts structured search intent from a free-text query
// using two independent language-model calls: one for metadata (name, type,
// date) and one for retrieval keywords. Both calls are best-effort and
// degrade to empty results on any transport or parse failure — a malformed
// model response must never block the overall query.
package intent

import (
	"context"
	"fmt"
	"log/slog"

	"drivemind/internal/llm"
)

// extractionMaxTokens bounds each extraction completion.
const extractionMaxTokens = 100

// Metadata is the structured part of a query intent. Empty fields mean the
// model found nothing. Never persisted.
type Metadata struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Date string `json:"date"`
}

const metadataPrompt = `Extract metadata from the following user query:
- File or folder name (if any)
- File type (like PDF, pptx (from presentation), spreadsheet (xlsx), image)
- Date or time reference (month, year, etc.)

Respond in JSON format with keys: name, type, date.
Use null if a value is not found.

Query: %q`

const keywordsPrompt = `From the user query below, extract a list of the most meaningful keywords for document retrieval.
- Include anything that is in double or single quotes.
- Prioritize any file names, folder names, or project-specific terms.
- Retain capitalized words (e.g., names) even if they are short.
- Avoid common stopwords (like "the", "and", "to") and generic terms (like "file", "folder", "document").
- Don't include months or years.

Query: %q

Respond in this format: ["", "", ""]`

// Extractor runs query-understanding completions.
type Extractor struct {
	completer llm.CompletionService
	logger    *slog.Logger
}

// NewExtractor creates an extractor over the given completion service.
func NewExtractor(completer llm.CompletionService) *Extractor {
	return &Extractor{completer: completer, logger: slog.Default()}
}

// ExtractMetadata asks the model for {name, type, date}. The response is
// parsed by trying the whole text, then every balanced {...} substring
// from last to first. Any failure yields the zero Metadata.
func (e *Extractor) ExtractMetadata(ctx context.Context, query string) Metadata {
	response, err := e.completer.Complete(ctx, fmt.Sprintf(metadataPrompt, query), extractionMaxTokens)
	if err != nil {
		e.logger.WarnContext(ctx, "metadata extraction failed, continuing without", "error", err)
		return Metadata{}
	}

	var meta Metadata
	if !decodeLastObject(response, &meta) {
		e.logger.WarnContext(ctx, "no parseable metadata object in model response")
		return Metadata{}
	}
	return meta
}

// ExtractKeywords asks the model for a keyword list. The response is parsed
// by trying the whole text, then every balanced [...] substring from first
// to last; non-string elements are dropped. Any failure yields an empty
// list.
func (e *Extractor) ExtractKeywords(ctx context.Context, query string) []string {
	response, err := e.completer.Complete(ctx, fmt.Sprintf(keywordsPrompt, query), extractionMaxTokens)
	if err != nil {
		e.logger.WarnContext(ctx, "keyword extraction failed, continuing without", "error", err)
		return nil
	}
	return decodeFirstArray(response)
}

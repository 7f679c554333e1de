// Package answer turns search hits into a final conversational answer,
// branching on what the best match is: a folder gets a listing, a media
// file a short acknowledgment, and text documents a grounded generation.
package answer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"drivemind/internal/drive"
	"drivemind/internal/filemeta"
	"drivemind/internal/llm"
	"drivemind/internal/search"
)

const (
	// generationMaxTokens bounds the grounded answer completion.
	generationMaxTokens = 300
	// historyTurns is how many of the most recent conversation turns the
	// generation prompt carries.
	historyTurns = 5
	// folderChildLimit caps a folder listing.
	folderChildLimit = 15
)

//go:generate mockgen -destination=mocks/mock_builder.go -package=mocks drivemind/internal/answer ContextBuilder

// Turn is one past exchange of the conversation.
type Turn struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Source is a record the answer drew on, with the provider's thumbnail
// surfaced when one exists in the raw payload.
type Source struct {
	filemeta.Record
	Thumb string `json:"thumb,omitempty"`
}

// Result is the composed answer plus its sources.
type Result struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// ContextBuilder assembles the grounding context for text documents.
type ContextBuilder interface {
	BuildContext(ctx context.Context, provider drive.Provider, userID, query string, records []filemeta.Record) (string, []filemeta.Record, error)
}

// Composer builds final answers.
type Composer struct {
	completer llm.CompletionService
	builder   ContextBuilder
	logger    *slog.Logger
}

// NewComposer creates a composer.
func NewComposer(completer llm.CompletionService, builder ContextBuilder) *Composer {
	return &Composer{
		completer: completer,
		builder:   builder,
		logger:    slog.Default(),
	}
}

// Compose answers the query from the search hits. Only generation
// failures are fatal; everything else degrades to a partial answer.
func (c *Composer) Compose(ctx context.Context, provider drive.Provider, userID, query string, hits []search.Hit, history []Turn) (Result, error) {
	if len(hits) == 0 {
		return Result{
			Answer:  "I couldn't find anything relevant about that query in your Google Drive.",
			Sources: []Source{},
		}, nil
	}

	first := hits[0].Record
	switch {
	case first.Type == filemeta.TypeFolder:
		return c.composeFolder(ctx, provider, first), nil
	case filemeta.IsMedia(first.Type):
		return Result{
			Answer:  fmt.Sprintf("I found a %s named **%s**. Need anything else?", first.Type, first.Name),
			Sources: []Source{enrich(first)},
		}, nil
	default:
		return c.composeText(ctx, provider, userID, query, hits, history)
	}
}

// composeFolder lists the folder's children with type icons. A failed
// listing renders as an empty folder rather than an error.
func (c *Composer) composeFolder(ctx context.Context, provider drive.Provider, folder filemeta.Record) Result {
	children, err := provider.ListChildren(ctx, folder.ID, folderChildLimit)
	if err != nil {
		c.logger.WarnContext(ctx, "folder listing failed", "folder_id", folder.ID, "error", err)
	}

	lines := make([]string, 0, len(children))
	for _, child := range children {
		lines = append(lines, filemeta.Icon(filemeta.Normalize(child.MimeType))+" "+child.Name)
	}
	listing := strings.Join(lines, "\n")
	if listing == "" {
		listing = "*(folder is empty)*"
	}

	return Result{
		Answer:  fmt.Sprintf("📁 Folder **%s** contents:\n\n%s", folder.Name, listing),
		Sources: []Source{enrich(folder)},
	}
}

func (c *Composer) composeText(ctx context.Context, provider drive.Provider, userID, query string, hits []search.Hit, history []Turn) (Result, error) {
	var textDocs, otherDocs []filemeta.Record
	for _, hit := range hits {
		if filemeta.IsText(hit.Record.Type) {
			textDocs = append(textDocs, hit.Record)
		} else {
			otherDocs = append(otherDocs, hit.Record)
		}
	}

	contextStr, used, err := c.builder.BuildContext(ctx, provider, userID, query, textDocs)
	if err != nil {
		return Result{}, err
	}

	var answerText string
	if contextStr != "" {
		answerText, err = c.completer.Complete(ctx, buildPrompt(query, contextStr, history), generationMaxTokens)
		if err != nil {
			return Result{}, fmt.Errorf("answer: generate: %w", err)
		}
		if len(otherDocs) > 0 {
			names := make([]string, 0, 3)
			for _, doc := range otherDocs {
				if len(names) == 3 {
					break
				}
				names = append(names, doc.Name)
			}
			answerText += fmt.Sprintf("\n\n(Also matched media files: %s)", strings.Join(names, ", "))
		}
	} else {
		// Nothing extractable; offer the matched names instead of
		// generating from thin air.
		lines := make([]string, 0, 3)
		for _, hit := range hits {
			if len(lines) == 3 {
				break
			}
			lines = append(lines, "- "+hit.Record.Name)
		}
		answerText = fmt.Sprintf("I found these files:\n%s\n\nLet me know which one to explore.", strings.Join(lines, "\n"))
	}

	sources := make([]Source, 0, len(used)+len(otherDocs))
	for _, doc := range used {
		sources = append(sources, enrich(doc))
	}
	for _, doc := range otherDocs {
		sources = append(sources, enrich(doc))
	}
	return Result{Answer: answerText, Sources: sources}, nil
}

// buildPrompt assembles the grounded generation prompt: recent history,
// the context block, then the query.
func buildPrompt(query, contextStr string, history []Turn) string {
	var hist string
	if len(history) > 0 {
		turns := history
		if len(turns) > historyTurns {
			turns = turns[len(turns)-historyTurns:]
		}
		rendered := make([]string, len(turns))
		for i, turn := range turns {
			rendered[i] = fmt.Sprintf("USER: %s\nASSISTANT: %s", turn.Question, turn.Answer)
		}
		hist = "\n\n### Conversation so far ###\n" + strings.Join(rendered, "\n\n")
	}

	return "You are a helpful assistant. Answer the query using ONLY the context below." +
		hist +
		"\n\n### Context ###\n" + contextStr +
		"\n\n### Query ###\n" + query +
		"\n\n### Answer ###"
}

// enrich copies the record into a Source, lifting the thumbnail link out
// of the raw payload when present.
func enrich(rec filemeta.Record) Source {
	source := Source{Record: rec.Clone()}
	if len(rec.Raw) > 0 {
		var raw struct {
			ThumbnailLink string `json:"thumbnailLink"`
		}
		if err := json.Unmarshal(rec.Raw, &raw); err == nil {
			source.Thumb = raw.ThumbnailLink
		}
	}
	return source
}

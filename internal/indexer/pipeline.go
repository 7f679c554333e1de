// Package indexer builds a user's searchable index artifacts from raw
// Drive listings.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"drivemind/internal/artifact"
	"drivemind/internal/drive"
	"drivemind/internal/filemeta"
	"drivemind/internal/llm"
	"drivemind/internal/vecindex"
)

// Pipeline turns raw listings into a complete artifact set: the record
// mapping, one canonical sentence embedding per record, a flat L2 index
// over those embeddings, and an inverted index from name tokens to record
// positions. Rebuilds are wholesale; there is no incremental update.
type Pipeline struct {
	embedder  llm.EmbeddingService
	artifacts *artifact.Store
	logger    *slog.Logger
}

// NewPipeline creates an indexing pipeline.
func NewPipeline(embedder llm.EmbeddingService, artifacts *artifact.Store) *Pipeline {
	return &Pipeline{
		embedder:  embedder,
		artifacts: artifacts,
		logger:    slog.Default(),
	}
}

// Rebuild builds and activates the artifact set for a user from listings.
// Returns the number of indexed records. The previous set stays live until
// the new one is completely written.
func (p *Pipeline) Rebuild(ctx context.Context, userID string, listings []drive.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, fmt.Errorf("indexer: no files to index for user %s", userID)
	}

	set, err := p.build(ctx, listings)
	if err != nil {
		return 0, err
	}

	if err := p.artifacts.Save(userID, set); err != nil {
		return 0, fmt.Errorf("indexer: persist artifacts: %w", err)
	}

	p.logger.InfoContext(ctx, "rebuilt index", "user_id", userID, "records", len(set.Mapping))
	return len(set.Mapping), nil
}

func (p *Pipeline) build(ctx context.Context, listings []drive.Listing) (*artifact.Set, error) {
	mapping := make([]filemeta.Record, 0, len(listings))
	sentences := make([]string, 0, len(listings))
	inverted := make(map[string][]int)

	for i, l := range listings {
		ftype := filemeta.Normalize(l.MimeType)
		date := truncateToDay(l.ModifiedTime)
		tokens := filemeta.Tokenize(l.Name)

		raw, err := json.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("indexer: marshal listing %s: %w", l.ID, err)
		}

		mapping = append(mapping, filemeta.Record{
			ID:   l.ID,
			Name: l.Name,
			Type: ftype,
			Date: date,
			Link: l.WebViewLink,
			Raw:  raw,
		})
		sentences = append(sentences, filemeta.BuildQuerySentence(l.Name, ftype, date, tokens))

		for _, tok := range tokens {
			inverted[tok] = append(inverted[tok], i)
		}
	}

	matrix, err := p.embedder.EmbedBatch(ctx, sentences)
	if err != nil {
		return nil, fmt.Errorf("indexer: embed sentences: %w", err)
	}
	if len(matrix) != len(mapping) {
		return nil, fmt.Errorf("indexer: embedded %d sentences, expected %d", len(matrix), len(mapping))
	}

	index, err := vecindex.New(len(matrix[0]))
	if err != nil {
		return nil, fmt.Errorf("indexer: create index: %w", err)
	}
	if err := index.Add(matrix...); err != nil {
		return nil, fmt.Errorf("indexer: populate index: %w", err)
	}

	return &artifact.Set{
		Mapping:  mapping,
		Matrix:   matrix,
		Index:    index,
		Inverted: inverted,
	}, nil
}

// truncateToDay reduces an RFC 3339 timestamp to YYYY-MM-DD. Shorter or
// empty values pass through unchanged.
func truncateToDay(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}

// Package search implements hybrid retrieval over a user's index
// artifacts: inverted-index keyword narrowing combined with dense
// nearest-neighbor search.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"drivemind/internal/artifact"
	"drivemind/internal/filemeta"
	"drivemind/internal/vecindex"
)

// DefaultTopK is the number of nearest neighbors requested when the
// caller passes topK <= 0.
const DefaultTopK = 5

// Hit is one search result: an independent copy of the matched record
// annotated with its squared L2 distance from the query.
type Hit struct {
	Record   filemeta.Record
	Distance float32
}

// Engine runs hybrid searches. Thresholds are squared L2 distances in the
// embedding space; they only make sense with the same embedding model the
// index was built with.
type Engine struct {
	artifacts         *artifact.Store
	threshold         float32
	fallbackThreshold float32
	logger            *slog.Logger
}

// NewEngine creates a search engine over the artifact store. threshold
// bounds accepted hits; fallbackThreshold bounds the single last-resort
// hit returned when nothing clears threshold.
func NewEngine(artifacts *artifact.Store, threshold, fallbackThreshold float32) *Engine {
	return &Engine{
		artifacts:         artifacts,
		threshold:         threshold,
		fallbackThreshold: fallbackThreshold,
		logger:            slog.Default(),
	}
}

// Search retrieves up to topK records for the query vector. Keywords
// narrow the candidate set through the inverted index when any of them
// match; otherwise the full index is searched. A user with no persisted
// artifacts gets an empty result, not an error.
func (e *Engine) Search(ctx context.Context, userID string, queryVec []float32, keywords []string, topK int) ([]Hit, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	set, err := e.artifacts.Load(userID)
	if err != nil {
		if errors.Is(err, artifact.ErrNotIndexed) {
			e.logger.InfoContext(ctx, "search before indexing", "user_id", userID)
			return nil, nil
		}
		return nil, fmt.Errorf("search: load artifacts: %w", err)
	}

	candidates := candidatePositions(set.Inverted, keywords)

	var raw []vecindex.Hit
	if len(candidates) > 0 {
		raw, err = searchCandidates(set, candidates, queryVec, topK)
	} else {
		raw, err = set.Index.Search(queryVec, topK)
	}
	if err != nil {
		return nil, fmt.Errorf("search: query index: %w", err)
	}

	e.logger.DebugContext(ctx, "vector search completed",
		"user_id", userID,
		"candidates", len(candidates),
		"raw_hits", len(raw),
	)
	return e.applyThresholds(set, raw), nil
}

// candidatePositions unions the postings of every keyword. Keywords are
// trimmed and lowercased to match the inverted index's token casing. The
// result is sorted and deduplicated.
func candidatePositions(inverted map[string][]int, keywords []string) []int {
	seen := make(map[int]struct{})
	for _, kw := range keywords {
		for _, pos := range inverted[strings.ToLower(strings.TrimSpace(kw))] {
			seen[pos] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// searchCandidates builds an ephemeral flat index over only the candidate
// rows and translates its positions back to mapping positions.
func searchCandidates(set *artifact.Set, candidates []int, queryVec []float32, topK int) ([]vecindex.Hit, error) {
	sub, err := vecindex.New(set.Index.Dim())
	if err != nil {
		return nil, err
	}
	for _, pos := range candidates {
		if err := sub.Add(set.Matrix[pos]); err != nil {
			return nil, err
		}
	}

	if topK > len(candidates) {
		topK = len(candidates)
	}
	hits, err := sub.Search(queryVec, topK)
	if err != nil {
		return nil, err
	}
	for i := range hits {
		hits[i].Position = candidates[hits[i].Position]
	}
	return hits, nil
}

// applyThresholds keeps hits within threshold; when none qualify but the
// best hit is within fallbackThreshold, that single hit is returned as a
// last resort. Hits arrive sorted ascending by distance.
func (e *Engine) applyThresholds(set *artifact.Set, hits []vecindex.Hit) []Hit {
	results := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if h.Distance <= e.threshold {
			results = append(results, Hit{
				Record:   set.Mapping[h.Position].Clone(),
				Distance: h.Distance,
			})
		}
	}

	if len(results) == 0 && len(hits) > 0 && hits[0].Distance <= e.fallbackThreshold {
		results = append(results, Hit{
			Record:   set.Mapping[hits[0].Position].Clone(),
			Distance: hits[0].Distance,
		})
	}
	return results
}

package assemble

import (
	"context"
	"fmt"
	"math"
	"sort"

	"drivemind/internal/llm"
)

// chunksPerDocument bounds how many re-ranked chunks of one document make
// it into the context.
const chunksPerDocument = 5

// normEpsilon guards the cosine denominator against zero-length chunk
// vectors.
const normEpsilon = 1e-8

// rankChunks embeds the query and every chunk, then returns the topK
// chunks by cosine similarity, best first.
func rankChunks(ctx context.Context, embedder llm.EmbeddingService, query string, chunks []string, topK int) ([]string, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	queryVec, err := embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("assemble: embed query: %w", err)
	}
	chunkVecs, err := embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("assemble: embed chunks: %w", err)
	}

	queryNorm := vectorNorm(queryVec)
	type scored struct {
		chunk string
		sim   float64
	}
	ranked := make([]scored, len(chunks))
	for i, vec := range chunkVecs {
		ranked[i] = scored{
			chunk: chunks[i],
			sim:   dot(vec, queryVec) / ((vectorNorm(vec) + normEpsilon) * queryNorm),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sim > ranked[j].sim
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]string, topK)
	for i := 0; i < topK; i++ {
		out[i] = ranked[i].chunk
	}
	return out, nil
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func vectorNorm(v []float32) float64 {
	return math.Sqrt(dot(v, v))
}

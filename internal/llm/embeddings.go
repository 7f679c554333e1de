package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultEmbeddingModel is the embedding model used unless configured
// otherwise.
const DefaultEmbeddingModel = openai.SmallEmbedding3

// EmbeddingService produces fixed-dimension dense vectors for texts. The
// same model must be used when building an index and when embedding
// queries against it; distances are only meaningful inside one embedding
// space.
type EmbeddingService interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Embedder is an EmbeddingService backed by the OpenAI embeddings API.
// Every returned vector is validated against the expected dimension so a
// model/config mismatch fails loudly instead of corrupting an index.
type Embedder struct {
	api          *openai.Client
	model        openai.EmbeddingModel
	expectedSize int
}

// NewEmbedder creates an embedding client. expectedSize is the configured
// vector dimension; an empty model selects DefaultEmbeddingModel.
func NewEmbedder(api *openai.Client, model string, expectedSize int) *Embedder {
	m := openai.EmbeddingModel(model)
	if model == "" {
		m = DefaultEmbeddingModel
	}
	return &Embedder{api: api, model: m, expectedSize: expectedSize}
}

// ExpectedSize returns the configured vector dimension.
func (e *Embedder) ExpectedSize() int { return e.expectedSize }

// Embed returns the embedding vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch returns one vector per input text, order-aligned.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("llm: empty embedding input")
	}

	resp, err := e.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("llm: expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	vecs := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		if len(data.Embedding) != e.expectedSize {
			return nil, fmt.Errorf("llm: embedding %d has dimension %d, expected %d", i, len(data.Embedding), e.expectedSize)
		}
		vecs[i] = data.Embedding
	}
	return vecs, nil
}

// ABOUTME: Retriever embeds a query and returns the top-k similar chunks
// ABOUTME: Rejects indexes built with a different embedding model at construction
package rag

import (
	"context"
	"fmt"

	"github.com/creditrust/complaint-rag/internal/models"
)

// Retriever performs similarity search over the persisted index
type Retriever struct {
	embedder Embedder
	index    Index
}

// NewRetriever creates a Retriever after validating that the index, if
// one has been built, was embedded with the same model the retriever
// will use for queries. A silent model mismatch would degrade ranking
// quality without any visible error.
func NewRetriever(embedder Embedder, index Index) (*Retriever, error) {
	meta, err := index.Meta()
	if err != nil {
		return nil, err
	}
	if meta != nil && meta.EmbeddingModel != embedder.ModelID() {
		return nil, fmt.Errorf("index was built with embedding model %q but %q is configured",
			meta.EmbeddingModel, embedder.ModelID())
	}
	return &Retriever{embedder: embedder, index: index}, nil
}

// Retrieve embeds the query and returns up to k chunks ordered by
// similarity descending. An empty index yields an empty result, not an
// error.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]models.RetrievalResult, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", k)
	}

	meta, err := r.index.Meta()
	if err != nil {
		return nil, err
	}
	if meta == nil || meta.ChunkCount == 0 {
		return nil, nil
	}

	queryVector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	return r.index.SearchSimilar(queryVector, k)
}

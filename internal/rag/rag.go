// ABOUTME: Core interfaces for the retrieval-and-answer pipeline
// ABOUTME: Satisfied by llm.Client and sqlite.IndexStore, faked in tests
package rag

import (
	"context"

	"github.com/creditrust/complaint-rag/internal/models"
	"github.com/creditrust/complaint-rag/internal/storage/sqlite"
)

// DefaultTopK is the number of chunks retrieved when the caller does
// not specify k.
const DefaultTopK = 5

// Embedder converts text into fixed-dimensional vectors. The same
// model must serve both build and query time; ModelID identifies it.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	ModelID() string
}

// Generator produces an answer from a filled prompt
type Generator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// Index is the persisted similarity index consumed at query time
type Index interface {
	SearchSimilar(queryVector []float64, k int) ([]models.RetrievalResult, error)
	Meta() (*sqlite.Meta, error)
}

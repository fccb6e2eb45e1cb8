// ABOUTME: Shared test fakes for the rag package
// ABOUTME: Deterministic keyword-count embedder and scripted generator
package rag

import (
	"context"
	"strings"
	"testing"

	"github.com/creditrust/complaint-rag/internal/storage/sqlite"
)

// fakeEmbedder produces deterministic vectors by counting vocabulary
// terms, so similarity rankings in tests are fully predictable.
type fakeEmbedder struct {
	modelID string
	vocab   []string
	calls   int
	err     error
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{
		modelID: "fake-embedder-v1",
		vocab:   []string{"credit", "report", "loan", "servicer"},
	}
}

func (f *fakeEmbedder) embed(text string) []float64 {
	lower := strings.ToLower(text)
	vector := make([]float64, len(f.vocab))
	for i, term := range f.vocab {
		vector[i] = float64(strings.Count(lower, term))
	}
	return vector
}

func (f *fakeEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.embed(text), nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = f.embed(text)
	}
	return vectors, nil
}

func (f *fakeEmbedder) ModelID() string {
	return f.modelID
}

// fakeGenerator returns a scripted answer and records the prompt it saw
type fakeGenerator struct {
	answer     string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func openTestStore(t *testing.T) *sqlite.IndexStore {
	t.Helper()
	db, err := sqlite.OpenInMemory()
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewIndexStore(db)
}

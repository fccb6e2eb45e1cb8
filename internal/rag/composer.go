// ABOUTME: Composer assembles the grounded prompt and delegates generation
// ABOUTME: Context order follows retrieval order; the answer is the trimmed model text
package rag

import (
	"context"
	"fmt"

	"github.com/creditrust/complaint-rag/internal/models"
)

// Composer turns retrieved chunks and a question into an answer
type Composer struct {
	generator Generator
}

// NewComposer creates a Composer
func NewComposer(generator Generator) *Composer {
	return &Composer{generator: generator}
}

// Compose builds the context block, fills the fixed prompt template,
// and calls the generative model. With no retrieved chunks the context
// is empty and the prompt's fallback instruction carries the answer;
// that is a content-level behavior, not an error.
func (c *Composer) Compose(ctx context.Context, question string, retrieved []models.RetrievalResult) (*models.AnswerResult, error) {
	contextBlock := BuildContext(retrieved)
	prompt := BuildPrompt(contextBlock, question)

	answer, err := c.generator.GenerateAnswer(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	sources := make([]models.Source, len(retrieved))
	for i, result := range retrieved {
		sources[i] = result.Chunk.Source()
	}

	return &models.AnswerResult{
		Question: question,
		Answer:   answer,
		Context:  contextBlock,
		Sources:  sources,
	}, nil
}

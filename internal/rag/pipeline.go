// ABOUTME: Pipeline is the single entry point callers use to answer questions
// ABOUTME: Orchestrates Retriever then Composer; all failures bubble unmodified
package rag

import (
	"context"
	"errors"
	"strings"

	"github.com/creditrust/complaint-rag/internal/models"
)

// ErrBlankQuestion is returned for empty or whitespace-only questions
var ErrBlankQuestion = errors.New("question is blank")

// Pipeline orchestrates retrieval and answer composition
type Pipeline struct {
	retriever *Retriever
	composer  *Composer
}

// NewPipeline creates the pipeline facade
func NewPipeline(retriever *Retriever, composer *Composer) *Pipeline {
	return &Pipeline{retriever: retriever, composer: composer}
}

// AnswerQuestion retrieves the top-k chunks for the question and
// composes a grounded answer. k values below 1 fall back to
// DefaultTopK. Blank questions are rejected before any retrieval.
func (p *Pipeline) AnswerQuestion(ctx context.Context, question string, k int) (*models.AnswerResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrBlankQuestion
	}
	if k < 1 {
		k = DefaultTopK
	}

	retrieved, err := p.retriever.Retrieve(ctx, question, k)
	if err != nil {
		return nil, err
	}

	return p.composer.Compose(ctx, question, retrieved)
}

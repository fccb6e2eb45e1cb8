// ABOUTME: End-to-end pipeline tests with fake model services
// ABOUTME: Builds a real in-memory index and exercises the facade contract
package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/creditrust/complaint-rag/internal/chunker"
	"github.com/creditrust/complaint-rag/internal/models"
)

var testComplaints = []models.Complaint{
	{
		ComplaintID: "C1",
		Product:     "Credit reporting",
		Narrative:   "Customer disputed an error on their report. It was never corrected.",
	},
	{
		ComplaintID: "C2",
		Product:     "Loans",
		Narrative:   "Loan servicer delayed processing for months.",
	},
}

func buildTestPipeline(t *testing.T, embedder *fakeEmbedder, generator *fakeGenerator, complaints []models.Complaint) *Pipeline {
	t.Helper()

	store := openTestStore(t)
	splitter := chunker.NewRecursiveSplitter(300, 50)
	indexer := NewIndexer(splitter, embedder, store)
	if _, err := indexer.Build(context.Background(), complaints); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	retriever, err := NewRetriever(embedder, store)
	if err != nil {
		t.Fatalf("NewRetriever failed: %v", err)
	}
	return NewPipeline(retriever, NewComposer(generator))
}

func TestAnswerQuestion_CreditReportScenario(t *testing.T) {
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{answer: "Credit report errors often go uncorrected."}
	pipeline := buildTestPipeline(t, embedder, generator, testComplaints)

	result, err := pipeline.AnswerQuestion(context.Background(), "Why do people complain about credit reports?", 1)
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}

	if len(result.Sources) != 1 {
		t.Fatalf("Expected exactly 1 source, got %d", len(result.Sources))
	}
	if result.Sources[0].ComplaintID != "C1" {
		t.Errorf("Source complaint = %s, want C1", result.Sources[0].ComplaintID)
	}
	if result.Sources[0].Product != "Credit reporting" {
		t.Errorf("Source product = %s", result.Sources[0].Product)
	}
	if result.Answer != "Credit report errors often go uncorrected." {
		t.Errorf("Answer = %q", result.Answer)
	}
	if result.Question != "Why do people complain about credit reports?" {
		t.Errorf("Question = %q", result.Question)
	}
}

func TestAnswerQuestion_AllFieldsPopulated(t *testing.T) {
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{answer: "Some grounded answer."}
	pipeline := buildTestPipeline(t, embedder, generator, testComplaints)

	result, err := pipeline.AnswerQuestion(context.Background(), "What do loan servicers do wrong?", 5)
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}

	if result.Question == "" || result.Answer == "" || result.Context == "" {
		t.Errorf("Result has empty fields: %+v", result)
	}
	// Both complaints fit in one chunk each, so k=5 returns both
	if len(result.Sources) != 2 {
		t.Errorf("Expected 2 sources, got %d", len(result.Sources))
	}
	// The context the generator saw contains the filled template
	if generator.lastPrompt == "" {
		t.Error("Generator was never called")
	}
}

func TestAnswerQuestion_ContextMatchesRetrievalOrder(t *testing.T) {
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{answer: "ok"}
	pipeline := buildTestPipeline(t, embedder, generator, testComplaints)

	result, err := pipeline.AnswerQuestion(context.Background(), "Loan servicer delays", 2)
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}

	// The loan chunk ranks first for a loan query, so the context opens with it
	if len(result.Sources) == 0 || result.Sources[0].ComplaintID != "C2" {
		t.Fatalf("Expected C2 ranked first, got %+v", result.Sources)
	}
	wantPrefix := "Loan servicer delayed processing for months."
	if got := result.Context[:len(wantPrefix)]; got != wantPrefix {
		t.Errorf("Context starts with %q, want %q", got, wantPrefix)
	}
}

func TestAnswerQuestion_BlankQuestionRejected(t *testing.T) {
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{answer: "should never be used"}
	pipeline := buildTestPipeline(t, embedder, generator, testComplaints)
	embedder.calls = 0

	for _, question := range []string{"", "   ", "\n\t"} {
		_, err := pipeline.AnswerQuestion(context.Background(), question, 5)
		if !errors.Is(err, ErrBlankQuestion) {
			t.Errorf("AnswerQuestion(%q) error = %v, want ErrBlankQuestion", question, err)
		}
	}
	if embedder.calls != 0 {
		t.Errorf("Blank questions reached the embedder %d times", embedder.calls)
	}
}

func TestAnswerQuestion_EmptyIndex(t *testing.T) {
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{answer: InsufficientContextAnswer}
	pipeline := buildTestPipeline(t, embedder, generator, nil)

	result, err := pipeline.AnswerQuestion(context.Background(), "Anything at all?", 5)
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}

	if result.Context != "" {
		t.Errorf("Context = %q, want empty string for empty index", result.Context)
	}
	if len(result.Sources) != 0 {
		t.Errorf("Sources = %v, want none", result.Sources)
	}
	if result.Answer != InsufficientContextAnswer {
		t.Errorf("Answer = %q", result.Answer)
	}
}

func TestAnswerQuestion_DefaultsKWhenUnset(t *testing.T) {
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{answer: "ok"}
	pipeline := buildTestPipeline(t, embedder, generator, testComplaints)

	result, err := pipeline.AnswerQuestion(context.Background(), "credit report question", 0)
	if err != nil {
		t.Fatalf("AnswerQuestion with k=0 failed: %v", err)
	}
	if len(result.Sources) == 0 {
		t.Error("Expected sources with defaulted k")
	}
}

func TestAnswerQuestion_GenerationFailurePropagates(t *testing.T) {
	genErr := errors.New("model overloaded")
	embedder := newFakeEmbedder()
	generator := &fakeGenerator{err: genErr}
	pipeline := buildTestPipeline(t, embedder, generator, testComplaints)

	_, err := pipeline.AnswerQuestion(context.Background(), "credit question", 2)
	if !errors.Is(err, genErr) {
		t.Errorf("Expected generation error to propagate, got %v", err)
	}
}

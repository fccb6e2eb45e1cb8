// ABOUTME: Query-time result types for retrieval and answer composition
// ABOUTME: RetrievalResult and AnswerResult are transient, never persisted
package models

// RetrievalResult is a retrieved chunk with its similarity score.
// Rank is the zero-based position in the similarity ordering.
type RetrievalResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// AnswerResult is the structured output of the pipeline facade
type AnswerResult struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Context  string   `json:"context"`
	Sources  []Source `json:"retrieved_sources"`
}

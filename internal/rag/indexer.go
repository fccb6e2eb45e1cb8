// ABOUTME: Indexer builds the persisted similarity index from complaints
// ABOUTME: Chunks every narrative, embeds the chunks, and atomically replaces the index
package rag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creditrust/complaint-rag/internal/chunker"
	"github.com/creditrust/complaint-rag/internal/models"
	"github.com/creditrust/complaint-rag/internal/storage/sqlite"
)

// Indexer orchestrates the build path: Chunker -> Embedder -> IndexStore
type Indexer struct {
	splitter *chunker.RecursiveSplitter
	embedder Embedder
	store    *sqlite.IndexStore
}

// BuildStats summarizes a completed index build
type BuildStats struct {
	Complaints int
	Chunks     int
	Dimension  int
}

// NewIndexer creates an Indexer
func NewIndexer(splitter *chunker.RecursiveSplitter, embedder Embedder, store *sqlite.IndexStore) *Indexer {
	return &Indexer{splitter: splitter, embedder: embedder, store: store}
}

// Build chunks and embeds every complaint, then replaces the persisted
// index in a single transaction. A build either fully succeeds or
// leaves the prior index untouched. Builds must not run concurrently
// with queries against the same index file.
func (ix *Indexer) Build(ctx context.Context, complaints []models.Complaint) (*BuildStats, error) {
	var chunks []models.Chunk
	// Complaint dumps can repeat an ID across rows; chunk numbering
	// continues per ID so (complaint_id, chunk_index) stays unique.
	nextIndex := make(map[string]int)
	for _, complaint := range complaints {
		split := ix.splitter.Split(complaint)
		base := nextIndex[complaint.ComplaintID]
		for i := range split {
			split[i].ChunkIndex = base + i
		}
		nextIndex[complaint.ComplaintID] = base + len(split)
		chunks = append(chunks, split...)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := ix.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}

	embedded := make([]models.EmbeddedChunk, len(chunks))
	for i, chunk := range chunks {
		embedded[i] = models.EmbeddedChunk{
			ChunkID: uuid.New().String(),
			Chunk:   chunk,
			Vector:  vectors[i],
		}
	}

	if err := ix.store.Replace(ix.embedder.ModelID(), embedded); err != nil {
		return nil, err
	}

	stats := &BuildStats{Complaints: len(complaints), Chunks: len(embedded)}
	if len(embedded) > 0 {
		stats.Dimension = len(embedded[0].Vector)
	}
	return stats, nil
}

// ABOUTME: Chunk is the unit of storage and retrieval with provenance metadata
// ABOUTME: EmbeddedChunk pairs a chunk with its vector for index persistence
package models

// Chunk is a bounded excerpt of a complaint narrative.
// ChunkIndex is a contiguous zero-based position within the complaint.
type Chunk struct {
	ComplaintID string `json:"complaint_id"`
	Product     string `json:"product"`
	ChunkIndex  int    `json:"chunk_index"`
	Text        string `json:"text"`
}

// Source returns the provenance metadata for a chunk
func (c Chunk) Source() Source {
	return Source{
		ComplaintID: c.ComplaintID,
		Product:     c.Product,
		ChunkIndex:  c.ChunkIndex,
	}
}

// Source identifies where a retrieved chunk came from
type Source struct {
	ComplaintID string `json:"complaint_id"`
	Product     string `json:"product"`
	ChunkIndex  int    `json:"chunk_index"`
}

// EmbeddedChunk is a chunk paired with its embedding vector.
// Created at index build time and never mutated afterwards.
type EmbeddedChunk struct {
	ChunkID string    `json:"chunk_id"`
	Chunk   Chunk     `json:"chunk"`
	Vector  []float64 `json:"vector"`
}

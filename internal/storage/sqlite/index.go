// ABOUTME: IndexStore persists embedded chunks and serves cosine top-k search
// ABOUTME: Rebuilds replace the whole index in one transaction, never partially
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/creditrust/complaint-rag/internal/models"
)

// IndexStore handles embedded chunk persistence and similarity search
type IndexStore struct {
	db *DB
}

// NewIndexStore creates a new IndexStore
func NewIndexStore(db *DB) *IndexStore {
	return &IndexStore{db: db}
}

// Meta describes the persisted index build
type Meta struct {
	EmbeddingModel string    `yaml:"embedding_model" json:"embedding_model"`
	Dimension      int       `yaml:"dimension" json:"dimension"`
	ChunkCount     int       `yaml:"chunk_count" json:"chunk_count"`
	BuiltAt        time.Time `yaml:"built_at" json:"built_at"`
}

// Replace swaps the entire index for the given chunks in one
// transaction. On any failure the transaction rolls back and the prior
// index stays intact; there is no partially-written state.
func (s *IndexStore) Replace(embeddingModel string, chunks []models.EmbeddedChunk) error {
	dimension := 0
	if len(chunks) > 0 {
		dimension = len(chunks[0].Vector)
	}
	for _, ec := range chunks {
		if len(ec.Vector) != dimension {
			return fmt.Errorf("%w: inconsistent vector dimension: expected %d, got %d for chunk %s",
				ErrStorage, dimension, len(ec.Vector), ec.ChunkID)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning rebuild transaction: %v", ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM chunks"); err != nil {
		return fmt.Errorf("%w: clearing chunks: %v", ErrStorage, err)
	}

	insert, err := tx.Prepare(`
		INSERT INTO chunks (id, complaint_id, product, chunk_index, chunk_text, vector, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %v", ErrStorage, err)
	}
	defer func() { _ = insert.Close() }()

	for position, ec := range chunks {
		blob := vectorToBlob(ec.Vector)
		_, err := insert.Exec(ec.ChunkID, ec.Chunk.ComplaintID, ec.Chunk.Product,
			ec.Chunk.ChunkIndex, ec.Chunk.Text, blob, position)
		if err != nil {
			return fmt.Errorf("%w: inserting chunk %s: %v", ErrStorage, ec.ChunkID, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO index_meta (id, embedding_model, dimension, chunk_count, built_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			embedding_model = excluded.embedding_model,
			dimension = excluded.dimension,
			chunk_count = excluded.chunk_count,
			built_at = excluded.built_at
	`, embeddingModel, dimension, len(chunks), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: writing index manifest: %v", ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing rebuild: %v", ErrStorage, err)
	}
	return nil
}

// Meta returns the build manifest, or nil when no index has been built
func (s *IndexStore) Meta() (*Meta, error) {
	var meta Meta
	err := s.db.QueryRow(`
		SELECT embedding_model, dimension, chunk_count, built_at
		FROM index_meta WHERE id = 1
	`).Scan(&meta.EmbeddingModel, &meta.Dimension, &meta.ChunkCount, &meta.BuiltAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading index manifest: %v", ErrStorage, err)
	}
	return &meta, nil
}

// Count returns the number of stored chunks
func (s *IndexStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM chunks").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting chunks: %v", ErrStorage, err)
	}
	return count, nil
}

// SearchSimilar scans all stored vectors and returns the top k by
// cosine similarity, descending. Equal scores keep insertion order, so
// rankings are reproducible across runs.
func (s *IndexStore) SearchSimilar(queryVector []float64, k int) ([]models.RetrievalResult, error) {
	rows, err := s.db.Query(`
		SELECT complaint_id, product, chunk_index, chunk_text, vector
		FROM chunks
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: scanning chunks: %v", ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	var results []models.RetrievalResult
	for rows.Next() {
		var (
			chunk models.Chunk
			blob  []byte
		)
		if err := rows.Scan(&chunk.ComplaintID, &chunk.Product, &chunk.ChunkIndex, &chunk.Text, &blob); err != nil {
			return nil, fmt.Errorf("%w: scanning chunk row: %v", ErrStorage, err)
		}

		results = append(results, models.RetrievalResult{
			Chunk: chunk,
			Score: CosineSimilarity(queryVector, blobToVector(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating chunks: %v", ErrStorage, err)
	}

	// Stable sort preserves insertion order between equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k >= 0 && len(results) > k {
		results = results[:k]
	}
	for i := range results {
		results[i].Rank = i
	}
	return results, nil
}

// vectorToBlob converts a float64 slice to a little-endian binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob back to a float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		vector[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[i*8:]))
	}
	return vector
}

// CosineSimilarity calculates cosine similarity between two vectors.
// Mismatched or zero vectors score 0 rather than erroring.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

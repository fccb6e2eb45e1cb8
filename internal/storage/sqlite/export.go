// ABOUTME: Audit exports for the persisted index
// ABOUTME: Flat CSV of chunk records plus a YAML build manifest
package sqlite

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ExportChunksCSV writes every stored chunk as a flat CSV row
// (complaint_id, product, chunk_index, chunk_text) for auditability.
func (s *IndexStore) ExportChunksCSV(outputPath string) error {
	rows, err := s.db.Query(`
		SELECT complaint_id, product, chunk_index, chunk_text
		FROM chunks
		ORDER BY position ASC
	`)
	if err != nil {
		return fmt.Errorf("%w: querying chunks for export: %v", ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("%w: creating export directory: %v", ErrStorage, err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("%w: creating export file: %v", ErrStorage, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"complaint_id", "product", "chunk_index", "chunk_text"}); err != nil {
		return fmt.Errorf("%w: writing export header: %v", ErrStorage, err)
	}

	for rows.Next() {
		var (
			complaintID string
			product     string
			chunkIndex  int
			chunkText   string
		)
		if err := rows.Scan(&complaintID, &product, &chunkIndex, &chunkText); err != nil {
			return fmt.Errorf("%w: scanning export row: %v", ErrStorage, err)
		}
		if err := writer.Write([]string{complaintID, product, strconv.Itoa(chunkIndex), chunkText}); err != nil {
			return fmt.Errorf("%w: writing export row: %v", ErrStorage, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating export rows: %v", ErrStorage, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flushing export: %v", ErrStorage, err)
	}
	return nil
}

// ExportManifestYAML writes the build manifest to a YAML file
func (s *IndexStore) ExportManifestYAML(outputPath string) error {
	meta, err := s.Meta()
	if err != nil {
		return err
	}
	if meta == nil {
		return fmt.Errorf("%w: no index has been built", ErrStorage)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("%w: creating export directory: %v", ErrStorage, err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("%w: creating manifest file: %v", ErrStorage, err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(meta); err != nil {
		return fmt.Errorf("%w: encoding manifest: %v", ErrStorage, err)
	}
	return encoder.Close()
}

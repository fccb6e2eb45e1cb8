// ABOUTME: Unit tests for index audit exports
// ABOUTME: Verifies the chunk CSV table and the YAML build manifest
package sqlite

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creditrust/complaint-rag/internal/models"
)

func TestExportChunksCSV(t *testing.T) {
	store := openTestStore(t)

	chunks := []models.EmbeddedChunk{
		testChunk("a", "C1", 0, "disputed an error", []float64{1, 0}),
		testChunk("b", "C1", 1, "never corrected", []float64{0, 1}),
		testChunk("c", "C2", 0, "delayed processing", []float64{1, 1}),
	}
	if err := store.Replace("model", chunks); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	outputPath := filepath.Join(t.TempDir(), "chunked_complaints.csv")
	if err := store.ExportChunksCSV(outputPath); err != nil {
		t.Fatalf("ExportChunksCSV failed: %v", err)
	}

	f, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open export: %v", err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d records", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "complaint_id,product,chunk_index,chunk_text" {
		t.Errorf("Header = %q", header)
	}

	// Rows come out in insertion order
	if records[1][0] != "C1" || records[1][2] != "0" || records[1][3] != "disputed an error" {
		t.Errorf("First row = %v", records[1])
	}
	if records[3][0] != "C2" || records[3][3] != "delayed processing" {
		t.Errorf("Last row = %v", records[3])
	}
}

func TestExportManifestYAML(t *testing.T) {
	store := openTestStore(t)

	chunks := []models.EmbeddedChunk{
		testChunk("a", "C1", 0, "some text", []float64{1, 0, 0}),
	}
	if err := store.Replace("text-embedding-3-small", chunks); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	outputPath := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := store.ExportManifestYAML(outputPath); err != nil {
		t.Fatalf("ExportManifestYAML failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "text-embedding-3-small") {
		t.Errorf("Manifest missing embedding model: %s", content)
	}
	if !strings.Contains(content, "dimension: 3") {
		t.Errorf("Manifest missing dimension: %s", content)
	}
	if !strings.Contains(content, "chunk_count: 1") {
		t.Errorf("Manifest missing chunk count: %s", content)
	}
}

func TestExportManifestYAML_NoIndex(t *testing.T) {
	store := openTestStore(t)

	outputPath := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := store.ExportManifestYAML(outputPath); err == nil {
		t.Error("Expected error exporting manifest before any build")
	}
}

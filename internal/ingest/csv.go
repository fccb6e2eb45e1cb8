// ABOUTME: Loads the filtered complaints dataset from CSV
// ABOUTME: Requires Complaint ID, Product, and Cleaned Narrative columns
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creditrust/complaint-rag/internal/models"
)

// Column names expected in the complaints CSV header
const (
	ColumnComplaintID = "Complaint ID"
	ColumnProduct     = "Product"
	ColumnNarrative   = "Cleaned Narrative"
)

// LoadComplaints reads complaints from a CSV file. Rows whose narrative
// is empty after trimming are skipped; they have nothing to index.
func LoadComplaints(path string) ([]models.Complaint, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("opening complaints file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadComplaints(f)
}

// ReadComplaints parses complaint records from CSV data
func ReadComplaints(r io.Reader) ([]models.Complaint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	idCol, err := findColumn(header, ColumnComplaintID)
	if err != nil {
		return nil, err
	}
	productCol, err := findColumn(header, ColumnProduct)
	if err != nil {
		return nil, err
	}
	narrativeCol, err := findColumn(header, ColumnNarrative)
	if err != nil {
		return nil, err
	}

	var complaints []models.Complaint
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		if len(record) <= idCol || len(record) <= productCol || len(record) <= narrativeCol {
			continue
		}

		narrative := strings.TrimSpace(record[narrativeCol])
		if narrative == "" {
			continue
		}

		complaints = append(complaints, models.Complaint{
			ComplaintID: strings.TrimSpace(record[idCol]),
			Product:     strings.TrimSpace(record[productCol]),
			Narrative:   narrative,
		})
	}

	return complaints, nil
}

func findColumn(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("complaints CSV is missing required column %q", name)
}

// ABOUTME: Shared wiring and validation helpers for CLI commands
// ABOUTME: Builds the configured pipeline from env config, client, and index store
package commands

import (
	"fmt"

	"github.com/creditrust/complaint-rag/internal/config"
	"github.com/creditrust/complaint-rag/internal/llm"
	"github.com/creditrust/complaint-rag/internal/rag"
	"github.com/creditrust/complaint-rag/internal/storage/sqlite"
)

// validatePositiveInt returns an error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// openPipeline wires config, OpenAI client, and index store into the
// query pipeline. The caller must Close the returned DB.
func openPipeline() (*rag.Pipeline, *sqlite.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := sqlite.Open(cfg.IndexPath)
	if err != nil {
		return nil, nil, nil, err
	}

	retriever, err := rag.NewRetriever(client, sqlite.NewIndexStore(db))
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	pipeline := rag.NewPipeline(retriever, rag.NewComposer(client))
	return pipeline, db, cfg, nil
}

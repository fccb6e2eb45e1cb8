// ABOUTME: CLI command to build the vector index from a complaints CSV
// ABOUTME: Chunks, embeds, and atomically replaces the persisted index
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/creditrust/complaint-rag/internal/chunker"
	"github.com/creditrust/complaint-rag/internal/config"
	"github.com/creditrust/complaint-rag/internal/ingest"
	"github.com/creditrust/complaint-rag/internal/llm"
	"github.com/creditrust/complaint-rag/internal/rag"
	"github.com/creditrust/complaint-rag/internal/storage/sqlite"
)

var (
	indexCSVPath     string
	indexChunkSize   int
	indexOverlap     int
	indexExportPath  string
	indexManifestOut string
)

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the complaint vector index",
		Long: `Build the vector index from a complaints CSV.

The CSV must have "Complaint ID", "Product", and "Cleaned Narrative"
columns. Every narrative is split into overlapping chunks, embedded,
and stored; the previous index is replaced atomically.

Examples:
  creditrag index --csv data/filtered_complaints.csv
  creditrag index --csv data/filtered_complaints.csv --export-chunks data/chunked_complaints.csv`,
		RunE: runIndex,
	}

	cmd.Flags().StringVar(&indexCSVPath, "csv", "", "Path to the complaints CSV (required)")
	cmd.Flags().IntVar(&indexChunkSize, "chunk-size", 0, "Chunk size in characters (default from RAG_CHUNK_SIZE)")
	cmd.Flags().IntVar(&indexOverlap, "overlap", -1, "Chunk overlap in characters (default from RAG_CHUNK_OVERLAP)")
	cmd.Flags().StringVar(&indexExportPath, "export-chunks", "", "Also write chunk records to this CSV for auditing")
	cmd.Flags().StringVar(&indexManifestOut, "export-manifest", "", "Also write the build manifest to this YAML file")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if indexChunkSize > 0 {
		cfg.ChunkSize = indexChunkSize
	}
	if indexOverlap >= 0 {
		cfg.ChunkOverlap = indexOverlap
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	complaints, err := ingest.LoadComplaints(indexCSVPath)
	if err != nil {
		return err
	}
	if len(complaints) == 0 {
		return fmt.Errorf("no complaints with narratives found in %s", indexCSVPath)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d complaints from %s\n", len(complaints), indexCSVPath)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := sqlite.NewIndexStore(db)
	splitter := chunker.NewRecursiveSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	indexer := rag.NewIndexer(splitter, client, store)

	stats, err := indexer.Build(cmd.Context(), complaints)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d chunks from %d complaints (dimension %d) at %s\n",
			stats.Chunks, stats.Complaints, stats.Dimension, cfg.IndexPath)
	}

	if indexExportPath != "" {
		if err := store.ExportChunksCSV(indexExportPath); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Chunk records written to %s\n", indexExportPath)
		}
	}

	if indexManifestOut != "" {
		if err := store.ExportManifestYAML(indexManifestOut); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Build manifest written to %s\n", indexManifestOut)
		}
	}

	return nil
}

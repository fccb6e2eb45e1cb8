// ABOUTME: CLI command to ask a question against the complaint index
// ABOUTME: Prints the grounded answer with its cited sources
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/creditrust/complaint-rag/internal/rag"
)

var askTopK int

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the complaint index",
		Long: `Answer a free-text question using retrieved complaint excerpts.

Examples:
  creditrag ask "Why are customers frustrated with credit reporting issues?"
  creditrag ask --k 3 --format json "Are there delays in processing student loans?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().IntVar(&askTopK, "k", rag.DefaultTopK, "Number of chunks to retrieve")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(askTopK, "k"); err != nil {
		return err
	}

	pipeline, db, _, err := openPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	result, err := pipeline.AnswerQuestion(cmd.Context(), args[0], askTopK)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", payload)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Answer)
	if len(result.Sources) > 0 && !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSources:")
		for _, src := range result.Sources {
			fmt.Fprintf(cmd.OutOrStdout(), "- Product: %s | Complaint ID: %s\n", src.Product, src.ComplaintID)
		}
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "\nContext:\n%s\n", result.Context)
	}

	return nil
}

// ABOUTME: CLI command to run evaluation questions through the pipeline
// ABOUTME: Writes a CSV report with answers, top sources, and blank scoring columns
package commands

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/creditrust/complaint-rag/internal/rag"
)

// defaultEvalQuestions is the standing evaluation set
var defaultEvalQuestions = []string{
	"What is the most common issue with credit reporting?",
	"Do customers complain about loan forgiveness issues?",
	"What happens when a credit card account is closed?",
	"Are there delays in processing student loans?",
	"Is there a common problem with mortgage billing errors?",
	"What issues arise from identity theft in complaints?",
	"Do people report problems with dispute resolution?",
	"How do consumers describe poor customer service?",
}

var (
	evalOutputPath    string
	evalQuestionsPath string
	evalTopK          int
)

// NewEvaluateCmd creates the evaluate command
func NewEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run evaluation questions and write a CSV report",
		Long: `Run a set of evaluation questions through the pipeline and write
a CSV report with each answer and its top two sources. Score and
comment columns are left blank for manual review.

Examples:
  creditrag evaluate
  creditrag evaluate --questions my_questions.txt --out reports/eval.csv`,
		RunE: runEvaluate,
	}

	cmd.Flags().StringVar(&evalOutputPath, "out", "reports/evaluation_output.csv", "Report output path")
	cmd.Flags().StringVar(&evalQuestionsPath, "questions", "", "File with one question per line (default: built-in set)")
	cmd.Flags().IntVar(&evalTopK, "k", rag.DefaultTopK, "Number of chunks to retrieve per question")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(evalTopK, "k"); err != nil {
		return err
	}

	questions := defaultEvalQuestions
	if evalQuestionsPath != "" {
		loaded, err := loadQuestions(evalQuestionsPath)
		if err != nil {
			return err
		}
		questions = loaded
	}
	if len(questions) == 0 {
		return fmt.Errorf("no evaluation questions to run")
	}

	pipeline, db, _, err := openPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := os.MkdirAll(filepath.Dir(evalOutputPath), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	file, err := os.Create(evalOutputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Question", "Generated Answer", "Retrieved Sources", "Quality Score (1-5)", "Comments"}); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	for i, question := range questions {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "[%d/%d] %s\n", i+1, len(questions), question)
		}

		result, err := pipeline.AnswerQuestion(cmd.Context(), question, evalTopK)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", question, err)
		}

		var topSources []string
		for _, src := range result.Sources {
			if len(topSources) == 2 {
				break
			}
			topSources = append(topSources, fmt.Sprintf("Product: %s | Complaint ID: %s", src.Product, src.ComplaintID))
		}

		row := []string{question, result.Answer, strings.Join(topSources, "\n---\n"), "", ""}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Evaluation complete. Results saved to %s\n", evalOutputPath)
	}
	return nil
}

// loadQuestions reads one question per line, skipping blanks
func loadQuestions(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("opening questions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var questions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			questions = append(questions, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading questions file: %w", err)
	}
	return questions, nil
}

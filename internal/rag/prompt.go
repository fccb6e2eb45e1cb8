// ABOUTME: Fixed prompt template for grounded answer generation
// ABOUTME: Pure string construction so it can be tested without the network
package rag

import (
	"fmt"
	"strings"

	"github.com/creditrust/complaint-rag/internal/models"
)

// ContextSeparator delimits chunk texts inside the context block so the
// model (and anything parsing the context) can tell chunks apart.
const ContextSeparator = "\n---\n"

// InsufficientContextAnswer is what the prompt instructs the model to
// reply when the retrieved context cannot answer the question.
const InsufficientContextAnswer = "I don't have enough information to answer that."

const promptTemplate = `You are a financial analyst assistant for CrediTrust.
Your task is to answer questions about customer complaints.
Use the following retrieved complaint excerpts to formulate your answer.

If the context doesn't contain the answer, say:
%q

--- Context ---
%s

--- Question ---
%s

--- Answer ---
`

// BuildContext concatenates retrieved chunk texts in retrieval order
func BuildContext(retrieved []models.RetrievalResult) string {
	texts := make([]string, len(retrieved))
	for i, result := range retrieved {
		texts[i] = result.Chunk.Text
	}
	return strings.Join(texts, ContextSeparator)
}

// BuildPrompt fills the fixed answer-generation template
func BuildPrompt(context, question string) string {
	return fmt.Sprintf(promptTemplate, InsufficientContextAnswer, context, question)
}

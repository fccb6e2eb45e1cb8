// ABOUTME: MCP tool definitions and registration for the complaint RAG server
// ABOUTME: Exposes ask_complaints and search_complaints over the pipeline facade
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/creditrust/complaint-rag/internal/models"
	"github.com/creditrust/complaint-rag/internal/rag"
)

// Answerer is the facade contract the ask tool calls
type Answerer interface {
	AnswerQuestion(ctx context.Context, question string, k int) (*models.AnswerResult, error)
}

// Searcher exposes retrieval without the generation step
type Searcher interface {
	Retrieve(ctx context.Context, query string, k int) ([]models.RetrievalResult, error)
}

// RegisterTools registers both MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, pipeline Answerer, retriever Searcher) *Handlers {
	handlers := &Handlers{
		pipeline:  pipeline,
		retriever: retriever,
	}

	server.AddTool(mcp.Tool{
		Name:        "ask_complaints",
		Description: "Answer a question about customer complaints using retrieved complaint excerpts. Returns the answer, the context used, and source metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the complaint corpus",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Number of complaint chunks to retrieve (default: 5)",
					"default":     rag.DefaultTopK,
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskComplaints)

	server.AddTool(mcp.Tool{
		Name:        "search_complaints",
		Description: "Retrieve the most similar complaint excerpts for a query without generating an answer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query to match against complaint excerpts",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Number of complaint chunks to retrieve (default: 5)",
					"default":     rag.DefaultTopK,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchComplaints)

	return handlers
}

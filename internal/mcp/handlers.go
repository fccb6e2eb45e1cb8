// ABOUTME: MCP tool handler implementations for the complaint RAG server
// ABOUTME: Thin callers of the pipeline facade; results are returned as JSON text
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/creditrust/complaint-rag/internal/rag"
)

// Handlers contains the handler functions for both MCP tools
type Handlers struct {
	pipeline  Answerer
	retriever Searcher
}

// AskComplaints handles the ask_complaints tool
func (h *Handlers) AskComplaints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}
	topK := request.GetInt("top_k", rag.DefaultTopK)
	if topK < 1 {
		return mcp.NewToolResultError(fmt.Sprintf("top_k must be at least 1, got %d", topK)), nil
	}

	result, err := h.pipeline.AnswerQuestion(ctx, question, topK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering question: %v", err)), nil
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// SearchComplaints handles the search_complaints tool
func (h *Handlers) SearchComplaints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	topK := request.GetInt("top_k", rag.DefaultTopK)
	if topK < 1 {
		return mcp.NewToolResultError(fmt.Sprintf("top_k must be at least 1, got %d", topK)), nil
	}

	results, err := h.retriever.Retrieve(ctx, query, topK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("searching complaints: %v", err)), nil
	}

	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

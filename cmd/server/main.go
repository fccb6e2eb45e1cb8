// ABOUTME: MCP server entry point with stdio transport
// ABOUTME: Exposes ask_complaints and search_complaints over the pipeline facade
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/creditrust/complaint-rag/internal/config"
	"github.com/creditrust/complaint-rag/internal/llm"
	ragmcp "github.com/creditrust/complaint-rag/internal/mcp"
	"github.com/creditrust/complaint-rag/internal/rag"
	"github.com/creditrust/complaint-rag/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	db, err := sqlite.Open(cfg.IndexPath)
	if err != nil {
		log.Fatalf("Failed to open index at %s: %v", cfg.IndexPath, err)
	}
	defer func() { _ = db.Close() }()

	store := sqlite.NewIndexStore(db)
	retriever, err := rag.NewRetriever(client, store)
	if err != nil {
		log.Fatalf("Failed to initialize retriever: %v", err)
	}
	pipeline := rag.NewPipeline(retriever, rag.NewComposer(client))

	server := mcpserver.NewMCPServer(
		"CrediTrust Complaint RAG",
		"0.1.0",
	)
	ragmcp.RegisterTools(server, pipeline, retriever)

	log.Printf("Complaint RAG MCP server starting on stdio (index: %s)...", cfg.IndexPath)
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

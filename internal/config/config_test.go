// ABOUTME: Unit tests for environment-driven configuration
// ABOUTME: Verifies defaults, overrides, and validation failures
package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_MissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RAG_CHAT_MODEL", "")
	t.Setenv("RAG_EMBEDDING_MODEL", "")
	t.Setenv("RAG_CHUNK_SIZE", "")
	t.Setenv("RAG_CHUNK_OVERLAP", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.ChunkSize != 300 {
		t.Errorf("ChunkSize = %d, want 300", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 50 {
		t.Errorf("ChunkOverlap = %d, want 50", cfg.ChunkOverlap)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.IndexPath == "" {
		t.Error("IndexPath should default to the XDG data dir")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RAG_CHAT_MODEL", "gpt-4o")
	t.Setenv("RAG_EMBEDDING_MODEL", "text-embedding-3-large")
	t.Setenv("RAG_CHUNK_SIZE", "500")
	t.Setenv("RAG_CHUNK_OVERLAP", "100")
	t.Setenv("RAG_INDEX_PATH", "/tmp/test-index.db")
	t.Setenv("RAG_OPENAI_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("EmbeddingModel = %q", cfg.EmbeddingModel)
	}
	if cfg.ChunkSize != 500 || cfg.ChunkOverlap != 100 {
		t.Errorf("Chunking = %d/%d, want 500/100", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.IndexPath != "/tmp/test-index.db" {
		t.Errorf("IndexPath = %q", cfg.IndexPath)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"overlap equals chunk size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"zero top k", func(c *Config) { c.TopK = 0 }},
		{"excessive retries", func(c *Config) { c.MaxRetries = 11 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				OpenAIKey:    "sk-test",
				ChunkSize:    300,
				ChunkOverlap: 50,
				TopK:         5,
				MaxRetries:   3,
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

// ABOUTME: Centralized configuration for the complaint RAG pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrMissingAPIKey is returned when no OpenAI credential is configured.
// Callers treat it as fatal at startup.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Config holds all configuration for the RAG pipeline
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Index settings
	IndexPath    string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("RAG_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("RAG_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("RAG_OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("RAG_OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("RAG_OPENAI_RETRY_DELAY", 2*time.Second),
		IndexPath:      getEnv("RAG_INDEX_PATH", DefaultIndexPath()),
		ChunkSize:      getEnvInt("RAG_CHUNK_SIZE", 300),
		ChunkOverlap:   getEnvInt("RAG_CHUNK_OVERLAP", 50),
		TopK:           getEnvInt("RAG_TOP_K", 5),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.OpenAIKey == "" {
		return ErrMissingAPIKey
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("RAG_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("RAG_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.TopK < 1 {
		return fmt.Errorf("RAG_TOP_K must be at least 1, got %d", c.TopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("RAG_OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// DefaultDataDir returns the default data directory following the XDG spec
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".local", "share", "creditrag")
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "creditrag")
}

// DefaultIndexPath returns the default vector index file path
func DefaultIndexPath() string {
	return filepath.Join(DefaultDataDir(), "index.db")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

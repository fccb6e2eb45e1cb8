// ABOUTME: SQLite schema for the persisted similarity index
// ABOUTME: Chunk rows with vector BLOBs plus a singleton build manifest
package sqlite

// Schema contains all SQL statements for index initialization
const Schema = `
-- Embedded chunks (one row per chunk, vector as little-endian float64 BLOB)
CREATE TABLE IF NOT EXISTS chunks (
    id TEXT PRIMARY KEY,
    complaint_id TEXT NOT NULL,
    product TEXT NOT NULL,
    chunk_index INTEGER NOT NULL,
    chunk_text TEXT NOT NULL,
    vector BLOB NOT NULL,
    position INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Build manifest singleton, written in the same transaction as the chunks
CREATE TABLE IF NOT EXISTS index_meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    embedding_model TEXT NOT NULL,
    dimension INTEGER NOT NULL,
    chunk_count INTEGER NOT NULL,
    built_at DATETIME NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_chunks_complaint ON chunks(complaint_id, chunk_index);
CREATE UNIQUE INDEX IF NOT EXISTS idx_chunks_position ON chunks(position);
`

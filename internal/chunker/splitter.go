// ABOUTME: RecursiveSplitter breaks complaint narratives into overlapping chunks
// ABOUTME: Splits on progressively finer separators, merging pieces up to the size limit
package chunker

import (
	"strings"

	"github.com/creditrust/complaint-rag/internal/models"
)

// defaultSeparators are tried coarsest first: paragraph break, line
// break, sentence end, word boundary, then individual characters.
var defaultSeparators = []string{"\n\n", "\n", ".", " ", ""}

// RecursiveSplitter splits text into chunks of at most chunkSize bytes,
// with adjacent chunks overlapping by roughly overlap bytes.
type RecursiveSplitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

// NewRecursiveSplitter creates a splitter. chunkSize must be positive
// and overlap must be smaller than chunkSize.
func NewRecursiveSplitter(chunkSize, overlap int) *RecursiveSplitter {
	if chunkSize <= 0 {
		chunkSize = 300
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}
	return &RecursiveSplitter{
		chunkSize:  chunkSize,
		overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split chunks a complaint narrative, tagging each chunk with the
// complaint's provenance and a contiguous zero-based chunk index.
// An empty narrative produces no chunks.
func (s *RecursiveSplitter) Split(complaint models.Complaint) []models.Chunk {
	pieces := s.splitText(complaint.Narrative, s.separators)

	var chunks []models.Chunk
	for _, text := range pieces {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			ComplaintID: complaint.ComplaintID,
			Product:     complaint.Product,
			ChunkIndex:  len(chunks),
			Text:        text,
		})
	}
	return chunks
}

// splitText splits on the coarsest separator present in the text, then
// recursively re-splits any piece still longer than chunkSize with the
// remaining finer separators. Pieces within the limit are merged back
// together up to chunkSize with overlap carried between chunks.
func (s *RecursiveSplitter) splitText(text string, separators []string) []string {
	if text == "" {
		return nil
	}

	sep := separators[len(separators)-1]
	var finer []string
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			finer = separators[i+1:]
			break
		}
	}

	var result []string
	var pending []string
	for _, piece := range splitKeepSeparator(text, sep) {
		if len(piece) <= s.chunkSize {
			pending = append(pending, piece)
			continue
		}
		result = append(result, s.merge(pending)...)
		pending = nil
		if len(finer) == 0 {
			// Indivisible atom larger than the limit: emit as-is.
			result = append(result, piece)
			continue
		}
		result = append(result, s.splitText(piece, finer)...)
	}
	return append(result, s.merge(pending)...)
}

// merge joins consecutive pieces into chunks no longer than chunkSize.
// When a chunk is emitted, pieces are dropped from the front of the
// window until at most overlap bytes remain, so the tail of each chunk
// reappears at the head of the next.
func (s *RecursiveSplitter) merge(pieces []string) []string {
	if len(pieces) == 0 {
		return nil
	}

	var chunks []string
	var window []string
	windowLen := 0
	for _, piece := range pieces {
		if windowLen+len(piece) > s.chunkSize && windowLen > 0 {
			chunks = append(chunks, strings.Join(window, ""))
			for len(window) > 0 && (windowLen > s.overlap || windowLen+len(piece) > s.chunkSize) {
				windowLen -= len(window[0])
				window = window[1:]
			}
		}
		window = append(window, piece)
		windowLen += len(piece)
	}
	if len(window) > 0 {
		chunks = append(chunks, strings.Join(window, ""))
	}
	return chunks
}

// splitKeepSeparator splits text on sep, keeping the separator attached
// to the end of the preceding piece so no characters are lost. An empty
// separator splits into individual UTF-8 sequences.
func splitKeepSeparator(text, sep string) []string {
	if sep == "" {
		return strings.SplitAfter(text, "")
	}
	parts := strings.SplitAfter(text, sep)
	// SplitAfter leaves a trailing empty piece when text ends with sep
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

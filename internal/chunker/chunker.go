// Package chunker splits documents into bounded, overlapping chunks.
//
// The splitter prefers to break at paragraph boundaries, then line
// boundaries, then word boundaries, and only cuts mid-word when a
// window contains no separator at all. Consecutive chunks from the
// same document share exactly the configured overlap so context is not
// lost at a boundary.
package chunker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// DefaultChunkSize is the default maximum chunk length in characters.
const DefaultChunkSize = 800

// DefaultChunkOverlap is the default overlap between consecutive chunks.
const DefaultChunkOverlap = 200

// Separators in order of preference. The splitter falls back to the
// next one only when the current window contains no occurrence.
var separators = []string{"\n\n", "\n", " "}

// Ensure Splitter implements the port.
var _ driven.Splitter = (*Splitter)(nil)

// Splitter divides document content into overlapping windows.
// Lengths and offsets are counted in characters (runes), not bytes,
// so multi-byte text is never cut mid-rune.
type Splitter struct {
	chunkSize int
	overlap   int
}

// New creates a splitter. The overlap must be strictly smaller than
// the chunk size; anything else makes chunking ill-defined and is
// rejected before any work begins.
func New(chunkSize, overlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size %d: %w", chunkSize, domain.ErrInvalidInput)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap %d: %w", overlap, domain.ErrInvalidInput)
	}
	if overlap >= chunkSize {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than chunk size %d: %w",
			overlap, chunkSize, domain.ErrInvalidInput)
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}, nil
}

// ChunkSize returns the configured maximum chunk length.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured overlap between consecutive chunks.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// Split chunks every document in order. A document shorter than the
// chunk size yields exactly one chunk; empty documents yield none.
func (s *Splitter) Split(documents []domain.Document) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	for _, doc := range documents {
		chunks = append(chunks, s.splitDocument(doc)...)
	}
	return chunks, nil
}

// splitDocument windows one document's content. Each window ends at
// the most preferred separator boundary that still guarantees forward
// progress past the overlap region; the next window starts exactly
// overlap characters before the previous one ended.
func (s *Splitter) splitDocument(doc domain.Document) []domain.Chunk {
	text := []rune(doc.Content)
	if len(text) == 0 {
		return nil
	}

	var chunks []domain.Chunk
	start := 0
	position := 0

	for {
		end := start + s.chunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			end = s.breakPoint(text, start, end)
		}

		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			Source:     doc.Source,
			Content:    string(text[start:end]),
			Position:   position,
			StartIndex: start,
		})
		position++

		if end == len(text) {
			return chunks
		}
		start = end - s.overlap
	}
}

// breakPoint picks where the window [start, start+chunkSize) should
// end. It scans backwards for the most preferred separator whose end
// lies past the overlap region (so the next window always advances),
// and falls back to a hard cut when no separator qualifies.
func (s *Splitter) breakPoint(text []rune, start, maxEnd int) int {
	// The next window starts at end-overlap; end must exceed this
	// floor or the splitter would stop making progress.
	floor := start + s.overlap + 1

	for _, sep := range separators {
		if at := lastBoundary(text, floor, maxEnd, []rune(sep)); at > 0 {
			return at
		}
	}
	return maxEnd
}

// lastBoundary returns the largest index in [floor, maxEnd] that falls
// immediately after an occurrence of sep, or 0 when there is none.
func lastBoundary(text []rune, floor, maxEnd int, sep []rune) int {
	for end := maxEnd; end >= floor; end-- {
		if hasSuffixAt(text, end, sep) {
			return end
		}
	}
	return 0
}

// hasSuffixAt reports whether sep ends exactly at text[:end].
func hasSuffixAt(text []rune, end int, sep []rune) bool {
	if end < len(sep) {
		return false
	}
	for i, r := range sep {
		if text[end-len(sep)+i] != r {
			return false
		}
	}
	return true
}

package driven

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// Loader reads a corpus location into uniform in-memory documents.
// The filesystem connector is the only implementation today.
type Loader interface {
	// Load reads all matching files under dir, recursively.
	// A directory with no matching files yields an empty slice.
	Load(ctx context.Context, dir string) ([]domain.Document, error)
}

// Splitter divides documents into bounded, overlapping chunks that
// preserve traceability to their source.
type Splitter interface {
	// Split chunks every document in order. Chunks carry the source
	// path and the character offset where they begin.
	Split(documents []domain.Document) ([]domain.Chunk, error)
}

package driven

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// VectorStore persists chunk records (id, vector, text, source) and
// serves nearest-neighbour search by cosine similarity.
//
// The collection is rebuilt wholesale on every ingestion run; there is
// no partial-update path.
type VectorStore interface {
	// Rebuild clears the collection and stores the given chunks, which
	// must already carry embeddings. Deletion and insertion happen in a
	// single transaction so a failed run never leaves duplicates.
	Rebuild(ctx context.Context, chunks []domain.Chunk) error

	// Search returns the k stored chunks closest to the query vector,
	// ordered by descending cosine similarity. An empty collection
	// yields an empty slice, not an error.
	Search(ctx context.Context, query []float32, k int) ([]domain.SearchResult, error)

	// Stats reports the distinct source files and total chunk count.
	Stats(ctx context.Context) (domain.IndexStats, error)

	// Close releases resources.
	Close() error
}

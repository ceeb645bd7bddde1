package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// RetrievalService turns a query string into the top-k most similar
// indexed chunks.
type RetrievalService interface {
	// Retrieve embeds the query and returns up to topK chunks ordered
	// by descending similarity. topK <= 0 is invalid input. An empty
	// index yields an empty slice.
	Retrieve(ctx context.Context, query string, topK int) ([]domain.SearchResult, error)

	// Stats reports what the index currently holds.
	Stats(ctx context.Context) (domain.IndexStats, error)
}

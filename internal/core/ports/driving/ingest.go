package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// IngestService indexes a corpus directory: load, chunk, embed, store.
type IngestService interface {
	// Ingest reads all text/markdown files under dir, splits them into
	// chunks, embeds every chunk and rebuilds the vector store
	// collection. The previous collection content is discarded.
	Ingest(ctx context.Context, dir string) (domain.IngestStats, error)
}

package services

import (
	"context"
	"fmt"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion flow: load documents, split into
// chunks, embed every chunk, rebuild the vector store collection.
type IngestService struct {
	loader   driven.Loader
	splitter driven.Splitter
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIngestService creates an ingest service. All collaborators are required.
func NewIngestService(
	loader driven.Loader,
	splitter driven.Splitter,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) (*IngestService, error) {
	if loader == nil || splitter == nil {
		return nil, domain.ErrInvalidInput
	}
	if embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if store == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}
	return &IngestService{loader: loader, splitter: splitter, embedder: embedder, store: store}, nil
}

// Ingest indexes the corpus under dir, replacing the previous
// collection wholesale. Embedding happens before the store is touched:
// a failed embedding run leaves the existing collection intact, and
// the rebuild itself is transactional, so repeated ingestion never
// accumulates duplicates.
func (s *IngestService) Ingest(ctx context.Context, dir string) (domain.IngestStats, error) {
	logger.Section("Ingestion")

	documents, err := s.loader.Load(ctx, dir)
	if err != nil {
		return domain.IngestStats{}, fmt.Errorf("load documents: %w", err)
	}

	chunks, err := s.splitter.Split(documents)
	if err != nil {
		return domain.IngestStats{}, fmt.Errorf("split documents: %w", err)
	}
	logger.Info("Split %d document(s) into %d chunk(s)", len(documents), len(chunks))

	if len(chunks) > 0 {
		texts := make([]string, len(chunks))
		for i, chunk := range chunks {
			texts[i] = chunk.Content
		}

		logger.Debug("Embedding %d chunk(s) with %s", len(chunks), s.embedder.ModelName())
		embeddings, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return domain.IngestStats{}, fmt.Errorf("embed chunks: %w", err)
		}
		if len(embeddings) != len(chunks) {
			return domain.IngestStats{}, fmt.Errorf(
				"embedder returned %d vectors for %d chunks", len(embeddings), len(chunks))
		}
		for i := range chunks {
			chunks[i].Embedding = embeddings[i]
		}
	}

	if err := s.store.Rebuild(ctx, chunks); err != nil {
		return domain.IngestStats{}, fmt.Errorf("rebuild collection: %w", err)
	}

	stats := domain.IngestStats{Documents: len(documents), Chunks: len(chunks)}
	logger.Info("Indexed %d chunk(s) from %d document(s)", stats.Chunks, stats.Documents)
	return stats, nil
}

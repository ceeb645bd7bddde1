package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService answers "given a query string, return the top-k
// relevant chunks" over the vector store.
type RetrievalService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewRetrievalService creates a retrieval service. Both collaborators
// are required; retrieval has no degraded mode.
func NewRetrievalService(embedder driven.EmbeddingService, store driven.VectorStore) (*RetrievalService, error) {
	if embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if store == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}
	return &RetrievalService{embedder: embedder, store: store}, nil
}

// Retrieve embeds the query and returns up to topK stored chunks
// ordered by descending cosine similarity.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("top k must be positive, got %d: %w", topK, domain.ErrInvalidInput)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	logger.Section("Retrieval")
	logger.Debug("Query: %q, top_k: %d", query, topK)

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(embedding))

	results, err := s.store.Search(ctx, embedding, topK)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	logger.Info("Retrieved %d chunk(s)", len(results))

	return results, nil
}

// Stats reports the distinct sources and total chunk count of the index.
func (s *RetrievalService) Stats(ctx context.Context) (domain.IndexStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("index stats: %w", err)
	}
	return stats, nil
}

package services

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// mockEmbedder is a mock implementation of driven.EmbeddingService.
// It records the texts it was asked to embed.
type mockEmbedder struct {
	embedding   []float32
	embedded    []string
	batchCalls  int
	err         error
	batchErr    error
	shortOutput bool
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.embedded = append(m.embedded, text)
	return m.embedding, m.err
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchCalls++
	m.embedded = append(m.embedded, texts...)
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	n := len(texts)
	if m.shortOutput && n > 0 {
		n--
	}
	out := make([][]float32, n)
	for i := range out {
		out[i] = m.embedding
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int    { return len(m.embedding) }
func (m *mockEmbedder) ModelName() string  { return "mock-embedder" }
func (m *mockEmbedder) Ping(_ context.Context) error { return m.err }
func (m *mockEmbedder) Close() error       { return nil }

// mockVectorStore is a mock implementation of driven.VectorStore.
type mockVectorStore struct {
	results   []domain.SearchResult
	stats     domain.IndexStats
	rebuilt   [][]domain.Chunk
	lastQuery []float32
	lastK     int
	err       error
}

func (m *mockVectorStore) Rebuild(_ context.Context, chunks []domain.Chunk) error {
	m.rebuilt = append(m.rebuilt, chunks)
	return m.err
}

func (m *mockVectorStore) Search(_ context.Context, query []float32, k int) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastK = k
	return m.results, m.err
}

func (m *mockVectorStore) Stats(_ context.Context) (domain.IndexStats, error) {
	return m.stats, m.err
}

func (m *mockVectorStore) Close() error { return nil }

// mockLLM is a mock implementation of driven.LLMService.
// It records the message list of the last Chat call.
type mockLLM struct {
	answer   string
	messages []domain.Turn
	opts     driven.ChatOptions
	calls    int
	err      error
}

func (m *mockLLM) Chat(_ context.Context, messages []domain.Turn, opts driven.ChatOptions) (string, error) {
	m.calls++
	m.messages = messages
	m.opts = opts
	return m.answer, m.err
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return m.err }
func (m *mockLLM) Close() error                 { return nil }

// mockLoader is a mock implementation of driven.Loader.
type mockLoader struct {
	documents []domain.Document
	err       error
}

func (m *mockLoader) Load(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

// mockSplitter is a mock implementation of driven.Splitter.
type mockSplitter struct {
	chunks []domain.Chunk
	err    error
}

func (m *mockSplitter) Split(_ []domain.Document) ([]domain.Chunk, error) {
	return m.chunks, m.err
}

// mockRetrieval is a mock implementation of driving.RetrievalService.
type mockRetrieval struct {
	results []domain.SearchResult
	stats   domain.IndexStats
	queries []string
	lastK   int
	err     error
}

func (m *mockRetrieval) Retrieve(_ context.Context, query string, topK int) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	m.lastK = topK
	return m.results, m.err
}

func (m *mockRetrieval) Stats(_ context.Context) (domain.IndexStats, error) {
	return m.stats, m.err
}

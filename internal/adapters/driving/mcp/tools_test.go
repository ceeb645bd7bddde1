package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

func newTestServer(t *testing.T, retrieval *mockRetrievalService, ask *mockAskService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Retrieval: retrieval, Ask: ask})
	require.NoError(t, err)
	return server
}

func TestNewServer(t *testing.T) {
	t.Run("requires retrieval service", func(t *testing.T) {
		_, err := NewServer(&Ports{Ask: &mockAskService{}})
		assert.ErrorIs(t, err, ErrMissingRetrievalService)
	})

	t.Run("requires ask service", func(t *testing.T) {
		_, err := NewServer(&Ports{Retrieval: &mockRetrievalService{}})
		assert.ErrorIs(t, err, ErrMissingAskService)
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("formats results as numbered source-attributed blocks", func(t *testing.T) {
		retrieval := &mockRetrievalService{
			results: []domain.SearchResult{
				{Chunk: domain.Chunk{Source: "docs/vacation.md", Content: "30 days per year."}, Score: 0.92},
				{Chunk: domain.Chunk{Source: "docs/benefits.md", Content: "Carryover is capped."}, Score: 0.81},
			},
		}
		server := newTestServer(t, retrieval, &mockAskService{})

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "vacation", TopK: 2})
		require.NoError(t, err)

		assert.Equal(t, 2, output.Count)
		assert.Contains(t, output.Results, "--- Result 1 ---\nSource: vacation.md\nContent: 30 days per year.")
		assert.Contains(t, output.Results, "--- Result 2 ---\nSource: benefits.md\nContent: Carryover is capped.")
		assert.Equal(t, "vacation", retrieval.lastQuery)
		assert.Equal(t, 2, retrieval.lastK)
	})

	t.Run("defaults top_k to 5", func(t *testing.T) {
		retrieval := &mockRetrievalService{}
		server := newTestServer(t, retrieval, &mockAskService{})

		_, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "anything"})
		require.NoError(t, err)
		assert.Equal(t, DefaultSearchTopK, retrieval.lastK)
	})

	t.Run("no matches yields the sentinel message", func(t *testing.T) {
		server := newTestServer(t, &mockRetrievalService{}, &mockAskService{})

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "nothing matches"})
		require.NoError(t, err)
		assert.Equal(t, noResultsMessage, output.Results)
		assert.Zero(t, output.Count)
	})

	t.Run("missing source renders as unknown", func(t *testing.T) {
		retrieval := &mockRetrievalService{
			results: []domain.SearchResult{
				{Chunk: domain.Chunk{Content: "orphan text"}},
			},
		}
		server := newTestServer(t, retrieval, &mockAskService{})

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "orphan"})
		require.NoError(t, err)
		assert.Contains(t, output.Results, "Source: unknown")
	})

	t.Run("propagates retrieval errors", func(t *testing.T) {
		retrieval := &mockRetrievalService{err: errors.New("index offline")}
		server := newTestServer(t, retrieval, &mockAskService{})

		_, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "q"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index offline")
	})
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the answer", func(t *testing.T) {
		ask := &mockAskService{answer: "Vacation is 30 days per year."}
		server := newTestServer(t, &mockRetrievalService{}, ask)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "How much vacation do I get?"})
		require.NoError(t, err)
		assert.Equal(t, "Vacation is 30 days per year.", output.Answer)
		assert.Equal(t, "How much vacation do I get?", ask.lastQuestion)
	})

	t.Run("each call is stateless", func(t *testing.T) {
		ask := &mockAskService{answer: "ok"}
		server := newTestServer(t, &mockRetrievalService{}, ask)

		_, _, err := server.handleAsk(ctx, nil, AskInput{Question: "first"})
		require.NoError(t, err)
		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "second"})
		require.NoError(t, err)

		// The tool never threads history; Ask, not AskWithHistory.
		assert.Nil(t, ask.lastHistory)
	})

	t.Run("propagates ask errors", func(t *testing.T) {
		ask := &mockAskService{err: errors.New("model unavailable")}
		server := newTestServer(t, &mockRetrievalService{}, ask)

		_, _, err := server.handleAsk(ctx, nil, AskInput{Question: "q"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model unavailable")
	})
}

func TestServer_handleList(t *testing.T) {
	ctx := context.Background()

	t.Run("reports sources and chunk count", func(t *testing.T) {
		retrieval := &mockRetrievalService{
			stats: domain.IndexStats{
				Sources:    []string{"benefits.md", "vacation.md"},
				ChunkCount: 14,
			},
		}
		server := newTestServer(t, retrieval, &mockAskService{})

		_, output, err := server.handleList(ctx, nil, ListInput{})
		require.NoError(t, err)
		assert.Equal(t, []string{"benefits.md", "vacation.md"}, output.Documents)
		assert.Equal(t, 14, output.ChunkCount)
		assert.Equal(t, "2 document(s) indexed in 14 chunks: benefits.md, vacation.md", output.Summary)
	})

	t.Run("empty index yields the sentinel message", func(t *testing.T) {
		server := newTestServer(t, &mockRetrievalService{}, &mockAskService{})

		_, output, err := server.handleList(ctx, nil, ListInput{})
		require.NoError(t, err)
		assert.Equal(t, emptyIndexMessage, output.Summary)
		assert.Empty(t, output.Documents)
	})

	t.Run("propagates stats errors", func(t *testing.T) {
		retrieval := &mockRetrievalService{err: errors.New("db locked")}
		server := newTestServer(t, retrieval, &mockAskService{})

		_, _, err := server.handleList(ctx, nil, ListInput{})
		require.Error(t, err)
	})
}

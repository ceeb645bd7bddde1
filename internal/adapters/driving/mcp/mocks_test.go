package mcp

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Compile-time checks that mocks satisfy the interfaces.
var (
	_ driving.RetrievalService = (*mockRetrievalService)(nil)
	_ driving.AskService       = (*mockAskService)(nil)
)

// mockRetrievalService is a test double for driving.RetrievalService.
type mockRetrievalService struct {
	results []domain.SearchResult
	stats   domain.IndexStats
	err     error

	lastQuery string
	lastK     int
}

func (m *mockRetrievalService) Retrieve(_ context.Context, query string, topK int) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastK = topK
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockRetrievalService) Stats(_ context.Context) (domain.IndexStats, error) {
	if m.err != nil {
		return domain.IndexStats{}, m.err
	}
	return m.stats, nil
}

// mockAskService is a test double for driving.AskService.
type mockAskService struct {
	answer string
	err    error

	lastQuestion string
	lastHistory  []domain.Turn
}

func (m *mockAskService) Ask(_ context.Context, question string) (string, error) {
	m.lastQuestion = question
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockAskService) AskWithHistory(_ context.Context, question string, history []domain.Turn) (string, error) {
	m.lastQuestion = question
	m.lastHistory = history
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

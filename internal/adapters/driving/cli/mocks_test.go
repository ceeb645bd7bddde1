package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Compile-time checks that mocks satisfy the interfaces.
var (
	_ driving.RetrievalService = (*mockRetrievalService)(nil)
	_ driving.AskService       = (*mockAskService)(nil)
	_ driving.IngestService    = (*mockIngestService)(nil)
)

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
	return m.stats, m.err
}

type mockAskService struct {
	answer string
	err    error

	questions   []string
	lastHistory []domain.Turn
	histCalls   int
}

func (m *mockAskService) Ask(_ context.Context, question string) (string, error) {
	m.questions = append(m.questions, question)
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockAskService) AskWithHistory(_ context.Context, question string, history []domain.Turn) (string, error) {
	m.questions = append(m.questions, question)
	m.lastHistory = history
	m.histCalls++
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

type mockIngestService struct {
	stats domain.IngestStats
	err   error

	lastDir string
}

func (m *mockIngestService) Ingest(_ context.Context, dir string) (domain.IngestStats, error) {
	m.lastDir = dir
	if m.err != nil {
		return domain.IngestStats{}, m.err
	}
	return m.stats, nil
}

var errMockFailure = errors.New("mock failure")

// setupTestServices injects mock services and returns a cleanup
// function restoring the previous wiring. The config directory is
// pointed at an empty temp dir so defaults apply.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldRetrieval := retrievalService
	oldAsk := askService
	oldIngest := ingestService
	oldConfigDir := configDir

	configDir = t.TempDir()
	retrievalService = &mockRetrievalService{
		results: []domain.SearchResult{
			{
				Chunk: domain.Chunk{Source: "docs/vacation.md", Content: "Vacation is 30 days per year."},
				Score: 0.91,
			},
		},
	}
	askService = &mockAskService{answer: "30 days per year."}
	ingestService = &mockIngestService{stats: domain.IngestStats{Documents: 2, Chunks: 9}}

	return func() {
		retrievalService = oldRetrieval
		askService = oldAsk
		ingestService = oldIngest
		configDir = oldConfigDir
	}
}

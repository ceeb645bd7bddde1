package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultSearchTopK is the number of results returned when the caller
// does not ask for a specific count.
const DefaultSearchTopK = 5

// noResultsMessage is returned when a search matches nothing.
const noResultsMessage = "No documents found for this search."

// emptyIndexMessage is returned when no documents have been ingested yet.
const emptyIndexMessage = "No documents are indexed yet. Run ingestion first."

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the text to search the indexed documents for"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of passages to return (default 5)"`
}

// SearchOutput is the output schema for the search_documents tool.
type SearchOutput struct {
	// Results holds the matching passages as numbered, source-attributed
	// blocks, ready to drop into a prompt.
	Results string `json:"results"`
	Count   int    `json:"count"`
}

// AskInput is the input schema for the ask_question tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed documents"`
}

// AskOutput is the output schema for the ask_question tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// ListInput is the input schema for the list_documents tool.
type ListInput struct{}

// ListOutput is the output schema for the list_documents tool.
type ListOutput struct {
	Documents  []string `json:"documents"`
	ChunkCount int      `json:"chunk_count"`
	Summary    string   `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search the indexed documents and return the most relevant passages",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a question using only the indexed documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the indexed documents and how many chunks they produced",
	}, s.handleList)
}

// handleSearch handles the search_documents tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	topK := input.TopK
	if topK <= 0 {
		topK = DefaultSearchTopK
	}

	results, err := s.ports.Retrieval.Retrieve(ctx, input.Query, topK)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	if len(results) == 0 {
		return nil, SearchOutput{Results: noResultsMessage}, nil
	}

	blocks := make([]string, len(results))
	for i, result := range results {
		source := result.Chunk.Source
		if source == "" {
			source = "unknown"
		}
		blocks[i] = fmt.Sprintf("--- Result %d ---\nSource: %s\nContent: %s",
			i+1, filepath.Base(source), result.Chunk.Content)
	}

	return nil, SearchOutput{
		Results: strings.Join(blocks, "\n\n"),
		Count:   len(results),
	}, nil
}

// handleAsk handles the ask_question tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}
	return nil, AskOutput{Answer: answer}, nil
}

// handleList handles the list_documents tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	stats, err := s.ports.Retrieval.Stats(ctx)
	if err != nil {
		return nil, ListOutput{}, err
	}

	if stats.ChunkCount == 0 {
		return nil, ListOutput{Summary: emptyIndexMessage}, nil
	}

	return nil, ListOutput{
		Documents:  stats.Sources,
		ChunkCount: stats.ChunkCount,
		Summary: fmt.Sprintf("%d document(s) indexed in %d chunks: %s",
			len(stats.Sources), stats.ChunkCount, strings.Join(stats.Sources, ", ")),
	}, nil
}

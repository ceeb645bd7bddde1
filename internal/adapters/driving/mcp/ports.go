package mcp

import (
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval serves similarity search and index statistics.
	Retrieval driving.RetrievalService

	// Ask answers questions from the indexed documents.
	Ask driving.AskService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	if p.Ask == nil {
		return ErrMissingAskService
	}
	return nil
}

package services

import (
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// contextSeparator joins context blocks so the model can tell chunk
// boundaries apart and attribute claims to sources.
const contextSeparator = "\n\n---\n\n"

// FormatContext renders retrieved chunks into a single prompt-ready
// block, each annotated with its source file. An empty input yields an
// empty string; the pipeline still runs and the model reports that it
// found nothing in the documents.
func FormatContext(chunks []domain.Chunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := make([]string, len(chunks))
	for i, chunk := range chunks {
		source := chunk.Source
		if source == "" {
			source = "unknown"
		}
		parts[i] = "[Source: " + source + "]\n" + chunk.Content
	}
	return strings.Join(parts, contextSeparator)
}

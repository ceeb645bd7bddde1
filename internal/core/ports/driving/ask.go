package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// AskService answers questions grounded in the indexed corpus.
//
// Both operations are pure functions of their explicit inputs: the
// conversational variant reads a history snapshot, it never owns or
// mutates conversation state. The caller appends the new exchange to
// its History after the call returns.
type AskService interface {
	// Ask answers a single-turn question from retrieved context only.
	Ask(ctx context.Context, question string) (string, error)

	// AskWithHistory answers a question with the prior conversation
	// threaded into the prompt. Retrieval uses only the bare question,
	// never the history.
	AskWithHistory(ctx context.Context, question string, history []domain.Turn) (string, error)
}

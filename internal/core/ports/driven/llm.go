package driven

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// LLMService provides hosted chat-completion operations for the answer
// pipeline.
//
// Implementations may include:
//   - Groq (llama-3.3-70b-versatile)
//   - OpenAI-compatible endpoints
//
// Call failures (network, rate limit, provider errors) are surfaced to
// the caller; this layer performs no retries of its own.
type LLMService interface {
	// Chat sends an ordered message list (system/user/assistant roles)
	// and returns the generated text.
	Chat(ctx context.Context, messages []domain.Turn, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable and the credentials are
	// accepted, without running inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatOptions configures generation behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Vectors from different models (or model versions) are not comparable;
// the store does not detect mixing, it just produces meaningless scores.
// Callers must re-ingest after switching models.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text) for local inference
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
type EmbeddingService interface {
	// Embed generates a vector embedding for a single query text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple document texts.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup to fail before any ingest work begins.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

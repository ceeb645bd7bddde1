// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - EmbeddingService: Generates vector embeddings for queries and chunks
//   - VectorStore: Persists chunk vectors and serves nearest-neighbour search
//   - LLMService: Hosted chat-completion API used by the answer pipeline
//
// The answer pipeline refuses construction when LLMService is absent;
// retrieval refuses construction when EmbeddingService or VectorStore is
// absent. There is no degraded mode: this application is nothing but the
// pipeline.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven

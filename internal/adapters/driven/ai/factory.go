// Package ai provides factory functions for creating the embedding and
// LLM service adapters from configuration.
package ai

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	ollamaembed "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/embedding/openai"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/llm/groq"
	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Supported embedding providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// EmbeddingSettings selects and configures an embedding provider.
type EmbeddingSettings struct {
	Provider   string
	Model      string
	BaseURL    string
	Dimensions int
}

// LLMSettings configures the chat model.
type LLMSettings struct {
	Model   string
	BaseURL string
}

// sharedEmbedders memoizes embedding services per provider+model so
// that ingestion, queries and the tool server all reuse one instance
// within a process instead of re-initialising the client per call.
var (
	sharedMu        sync.Mutex
	sharedEmbedders = make(map[string]driven.EmbeddingService)
)

// SharedEmbeddingService returns a process-wide embedding service for
// the given settings, creating it on first use.
func SharedEmbeddingService(settings EmbeddingSettings) (driven.EmbeddingService, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	key := settings.Provider + "/" + settings.Model + "/" + settings.BaseURL
	if svc, ok := sharedEmbedders[key]; ok {
		return svc, nil
	}

	svc, err := CreateEmbeddingService(settings)
	if err != nil {
		return nil, err
	}
	sharedEmbedders[key] = svc
	return svc, nil
}

// CreateEmbeddingService creates the appropriate embedding service
// based on settings. An empty provider defaults to ollama.
func CreateEmbeddingService(settings EmbeddingSettings) (driven.EmbeddingService, error) {
	switch settings.Provider {
	case "", ProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: settings.Dimensions,
		}), nil

	case ProviderOpenAI:
		svc, err := openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: settings.Dimensions,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
		}
		return svc, nil

	default:
		return nil, fmt.Errorf("%w: unsupported embedding provider: %s",
			domain.ErrEmbeddingUnavailable, settings.Provider)
	}
}

// CreateLLMService creates the Groq LLM service, reading the API key
// from GROQ_API_KEY. A missing key fails here, at startup.
func CreateLLMService(settings LLMSettings) (driven.LLMService, error) {
	svc, err := groq.NewLLMService(groq.Config{
		APIKey:  os.Getenv("GROQ_API_KEY"),
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// ValidateEmbeddingService pings the service with a short timeout,
// closing it on failure.
func ValidateEmbeddingService(svc driven.EmbeddingService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w)", domain.ErrEmbeddingUnavailable, err)
	}
	return nil
}

// ValidateLLMService pings the service with a short timeout.
func ValidateLLMService(svc driven.LLMService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w)", domain.ErrLLMUnavailable, err)
	}
	return nil
}

// ResetShared drops all memoized embedding services. Intended for tests.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	for _, svc := range sharedEmbedders {
		svc.Close()
	}
	sharedEmbedders = make(map[string]driven.EmbeddingService)
}

package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// pingableEmbedder is a test double whose Ping outcome is scripted.
type pingableEmbedder struct {
	pingErr error
}

var _ driven.EmbeddingService = (*pingableEmbedder)(nil)

func (p *pingableEmbedder) Embed(context.Context, string) ([]float32, error) { return nil, nil }
func (p *pingableEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, nil
}
func (p *pingableEmbedder) Dimensions() int            { return 384 }
func (p *pingableEmbedder) ModelName() string          { return "fake" }
func (p *pingableEmbedder) Ping(context.Context) error { return p.pingErr }
func (p *pingableEmbedder) Close() error               { return nil }

// pingableLLM is a test double whose Ping outcome is scripted.
type pingableLLM struct {
	pingErr error
}

var _ driven.LLMService = (*pingableLLM)(nil)

func (p *pingableLLM) Chat(context.Context, []domain.Turn, driven.ChatOptions) (string, error) {
	return "", nil
}
func (p *pingableLLM) ModelName() string          { return "fake" }
func (p *pingableLLM) Ping(context.Context) error { return p.pingErr }
func (p *pingableLLM) Close() error               { return nil }

func TestCreateEmbeddingService(t *testing.T) {
	t.Run("defaults to ollama", func(t *testing.T) {
		svc, err := CreateEmbeddingService(EmbeddingSettings{})
		require.NoError(t, err)
		defer svc.Close()

		assert.Equal(t, "all-minilm", svc.ModelName())
		assert.Equal(t, 384, svc.Dimensions())
	})

	t.Run("openai without API key fails", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		_, err := CreateEmbeddingService(EmbeddingSettings{Provider: ProviderOpenAI})
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		_, err := CreateEmbeddingService(EmbeddingSettings{Provider: "chroma"})
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})
}

func TestSharedEmbeddingService(t *testing.T) {
	t.Cleanup(ResetShared)

	first, err := SharedEmbeddingService(EmbeddingSettings{Provider: ProviderOllama})
	require.NoError(t, err)

	second, err := SharedEmbeddingService(EmbeddingSettings{Provider: ProviderOllama})
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := SharedEmbeddingService(EmbeddingSettings{Provider: ProviderOllama, Model: "nomic-embed-text"})
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestValidateEmbeddingService(t *testing.T) {
	t.Run("reachable service passes", func(t *testing.T) {
		assert.NoError(t, ValidateEmbeddingService(&pingableEmbedder{}))
	})

	t.Run("unreachable service is an embedding error", func(t *testing.T) {
		err := ValidateEmbeddingService(&pingableEmbedder{pingErr: errors.New("connection refused")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestValidateLLMService(t *testing.T) {
	t.Run("reachable service passes", func(t *testing.T) {
		assert.NoError(t, ValidateLLMService(&pingableLLM{}))
	})

	t.Run("unreachable service is an LLM error", func(t *testing.T) {
		err := ValidateLLMService(&pingableLLM{pingErr: errors.New("401 unauthorized")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
		assert.Contains(t, err.Error(), "401 unauthorized")
	})
}

func TestCreateLLMService(t *testing.T) {
	t.Run("missing GROQ_API_KEY fails at construction", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "")

		_, err := CreateLLMService(LLMSettings{})
		assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	})

	t.Run("with key returns configured service", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk_test")

		svc, err := CreateLLMService(LLMSettings{})
		require.NoError(t, err)
		defer svc.Close()

		assert.Equal(t, "llama-3.3-70b-versatile", svc.ModelName())
	})
}

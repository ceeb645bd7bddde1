package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// NotFoundAnswer is the fixed fallback sentence the model is
// instructed to use verbatim when the context holds no answer.
const NotFoundAnswer = "I could not find that information in the available documents."

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 5

// Generation parameters for grounded answers: slightly varied but
// still factual, with a bound on response length.
const (
	answerTemperature = 0.3
	answerMaxTokens   = 1024
)

const systemPrompt = "You are an assistant that answers questions based on " +
	"the company's internal documents. Answer clearly and concisely."

const conversationalSystemPrompt = systemPrompt +
	" Use the conversation history to understand the context of the user's questions."

// questionTemplate receives the formatted context block and the
// question. The grounding rules are a prompt-level contract with the
// model; the pipeline cannot mechanically enforce them.
const questionTemplate = `Answer the question below using ONLY the provided context.
If the answer cannot be found in the context, say:
"` + NotFoundAnswer + `"
Do not make up information. Cite the source document when possible.

CONTEXT:
%s

QUESTION: %s

ANSWER:`

// AskService composes retrieval, context formatting and the LLM call
// into a single "ask a question, get a grounded answer" operation.
type AskService struct {
	retrieval driving.RetrievalService
	llm       driven.LLMService
	topK      int
}

// NewAskService creates the answer pipeline. A missing LLM service is
// a configuration error and fails here, at construction time, not at
// the first call.
func NewAskService(retrieval driving.RetrievalService, llm driven.LLMService, topK int) (*AskService, error) {
	if retrieval == nil {
		return nil, domain.ErrVectorStoreUnavailable
	}
	if llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &AskService{retrieval: retrieval, llm: llm, topK: topK}, nil
}

// Ask answers a single-turn question grounded in retrieved context.
func (s *AskService) Ask(ctx context.Context, question string) (string, error) {
	return s.answer(ctx, question, nil, systemPrompt)
}

// AskWithHistory answers a question with the prior conversation
// threaded into the prompt between the system instruction and the
// current question. Retrieval uses only the bare question; the
// history is deliberately not used to rewrite or expand the query.
// The caller appends the new exchange to its history afterwards.
func (s *AskService) AskWithHistory(ctx context.Context, question string, history []domain.Turn) (string, error) {
	return s.answer(ctx, question, history, conversationalSystemPrompt)
}

func (s *AskService) answer(ctx context.Context, question string, history []domain.Turn, system string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("empty question: %w", domain.ErrInvalidInput)
	}

	logger.Section("Answer Pipeline")
	logger.Debug("Question: %q, history: %d turn(s)", question, len(history))

	results, err := s.retrieval.Retrieve(ctx, question, s.topK)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}

	chunks := make([]domain.Chunk, len(results))
	for i, r := range results {
		chunks[i] = r.Chunk
	}
	contextBlock := FormatContext(chunks)
	logger.Debug("Context: %d chunk(s), %d chars", len(chunks), len(contextBlock))

	messages := make([]domain.Turn, 0, len(history)+2)
	messages = append(messages, domain.Turn{Role: domain.RoleSystem, Content: system})
	messages = append(messages, history...)
	messages = append(messages, domain.Turn{
		Role:    domain.RoleUser,
		Content: fmt.Sprintf(questionTemplate, contextBlock, question),
	})

	answer, err := s.llm.Chat(ctx, messages, driven.ChatOptions{
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	logger.Info("Answer: %d chars", len(answer))
	return answer, nil
}

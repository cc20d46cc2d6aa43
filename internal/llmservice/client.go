package llmservice

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms/openai"

	"document-qa/internal/config"
	"document-qa/internal/models"
)

// NewClient creates a chat-completion client against an OpenAI-compatible
// endpoint. A missing key is an authentication error raised here, before any
// model call is attempted.
func NewClient(llmCfg *config.LLMConfig) (*openai.LLM, error) {
	if llmCfg.Key == "" {
		return nil, models.ErrMissingAPIKey
	}

	llm, err := openai.New(
		openai.WithBaseURL(llmCfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(llmCfg.Key, "Bearer ")),
		openai.WithModel(llmCfg.InferenceModel),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing LLM client: %w", err)
	}
	return llm, nil
}

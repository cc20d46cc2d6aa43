package embedding

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"document-qa/internal/config"
	"document-qa/internal/models"
)

// NewEmbedder creates an embedder against an OpenAI-compatible endpoint.
// A missing key is an authentication error raised here, before any
// embedding call is attempted.
func NewEmbedder(llmCfg *config.LLMConfig) (*embeddings.EmbedderImpl, error) {
	if llmCfg.Key == "" {
		return nil, models.ErrMissingAPIKey
	}

	llm, err := openai.New(
		openai.WithBaseURL(llmCfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(llmCfg.Key, "Bearer ")),
		openai.WithModel(llmCfg.EmbeddingModel),
		openai.WithEmbeddingModel(llmCfg.EmbeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing embedding client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	return embedder, nil
}

package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"

	"document-qa/internal/models"
)

// ContentGenerator is the single-call LLM surface the answerer needs.
// *openai.LLM satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// BuildPrompt assembles the answer-with-sources prompt: fixed instructions,
// each retrieved chunk's text labelled by its citation label, and the strict
// trailing-SOURCES output format.
func BuildPrompt(query string, chunks []models.Chunk) string {
	var excerpts strings.Builder
	for i, chunk := range chunks {
		if i > 0 {
			excerpts.WriteString("\n")
		}
		excerpts.WriteString("Content: ")
		excerpts.WriteString(chunk.Text)
		excerpts.WriteString("\nSource: ")
		excerpts.WriteString(chunk.Label)
	}
	return fmt.Sprintf(models.AnswerPromptTemplate, query, excerpts.String())
}

// Ask invokes the model once, deterministically, and parses the response.
// Any error from the model call propagates verbatim.
func Ask(ctx context.Context, llm ContentGenerator, model, query string, chunks []models.Chunk) (models.Answer, error) {
	prompt := BuildPrompt(query, chunks)
	log.Debug().Int("chunks", len(chunks)).Str("model", model).Msg("Requesting answer")

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}
	resp, err := llm.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(0),
	)
	if err != nil {
		return models.Answer{}, fmt.Errorf("generating answer: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Answer{}, fmt.Errorf("model returned no choices")
	}

	return Parse(resp.Choices[0].Content), nil
}

// Parse splits a raw model response on the SOURCES marker. When the model
// did not comply with the output format the whole response becomes the body
// and the citation list is empty; format drift is never an error.
func Parse(raw string) models.Answer {
	body, rest, found := strings.Cut(raw, models.SourcesMarker)
	if !found {
		return models.Answer{Body: raw}
	}

	var citations []string
	for _, label := range strings.Split(rest, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			citations = append(citations, label)
		}
	}
	return models.Answer{Body: body, Citations: citations}
}

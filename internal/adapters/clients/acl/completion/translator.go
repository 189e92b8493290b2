package completion

import (
	"fmt"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// Path is the endpoint relative to the provider base URL.
const Path = "/completions"

// ToRequest builds a completion request for a rendered prompt.
func ToRequest(model, prompt string, temperature float64, maxTokens int) RequestDTO {
	return RequestDTO{
		Model:       model,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// ToResult flattens the first choice into a mapping with "text" and
// "finish_reason" keys. A response without choices is reported as
// domain.ErrUnavailable.
func ToResult(dto *ResponseDTO) (map[string]any, error) {
	if len(dto.Choices) == 0 {
		return nil, fmt.Errorf("completion response %q has no choices: %w", dto.ID, domain.ErrUnavailable)
	}
	c := dto.Choices[0]
	return map[string]any{
		"text":          c.Text,
		"finish_reason": c.FinishReason,
	}, nil
}

// Usage returns prompt and completion token counts, zero when unreported.
func Usage(dto *ResponseDTO) (prompt, completion int) {
	if dto.Usage == nil {
		return 0, 0
	}
	return dto.Usage.PromptTokens, dto.Usage.CompletionTokens
}

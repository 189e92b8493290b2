package generate

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// Path is the endpoint relative to the server base URL.
const Path = "/api/generate"

// Keys Ollama uses for token accounting.
const (
	keyPromptEvalCount = "prompt_eval_count"
	keyEvalCount       = "eval_count"
)

// ToRequest builds a non-streaming generate request.
func ToRequest(model, prompt string, temperature float64, maxTokens int) RequestDTO {
	return RequestDTO{
		Model:  model,
		Prompt: prompt,
		Options: OptionsDTO{
			Temperature: temperature,
			NumPredict:  maxTokens,
		},
	}
}

// ToResult returns the decoded body unchanged so callers see every key the
// server sent. An empty body is reported as domain.ErrUnavailable.
func ToResult(dto ResponseDTO) (map[string]any, error) {
	if len(dto) == 0 {
		return nil, fmt.Errorf("generate response: %w", errors.Join(errors.New("empty body"), domain.ErrUnavailable))
	}
	return map[string]any(dto), nil
}

// Usage returns prompt and completion token counts, zero when unreported.
// JSON numbers decode as float64.
func Usage(dto ResponseDTO) (prompt, completion int) {
	return count(dto[keyPromptEvalCount]), count(dto[keyEvalCount])
}

func count(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

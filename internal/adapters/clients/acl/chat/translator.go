package chat

import (
	"fmt"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// Path is the endpoint relative to the provider base URL.
const Path = "/chat/completions"

const roleUser = "user"

// Message is the assistant reply handed back to callers of the model port.
type Message struct {
	Role         string
	Content      string
	FinishReason string
}

// GetContent returns the reply text.
func (m *Message) GetContent() string {
	return m.Content
}

// ToRequest wraps a rendered prompt as a single user turn.
func ToRequest(model, prompt string, temperature float64, maxTokens int) RequestDTO {
	return RequestDTO{
		Model:       model,
		Messages:    []MessageDTO{{Role: roleUser, Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// ToMessage extracts the first choice. A response without choices is
// reported as domain.ErrUnavailable.
func ToMessage(dto *ResponseDTO) (*Message, error) {
	if len(dto.Choices) == 0 {
		return nil, fmt.Errorf("chat response %q has no choices: %w", dto.ID, domain.ErrUnavailable)
	}
	c := dto.Choices[0]
	return &Message{
		Role:         c.Message.Role,
		Content:      c.Message.Content,
		FinishReason: c.FinishReason,
	}, nil
}

// Usage returns prompt and completion token counts, zero when unreported.
func Usage(dto *ResponseDTO) (prompt, completion int) {
	if dto.Usage == nil {
		return 0, 0
	}
	return dto.Usage.PromptTokens, dto.Usage.CompletionTokens
}

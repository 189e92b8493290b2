// Package chat implements the Anti-Corruption Layer translators for
// OpenAI-compatible chat completion endpoints (Groq, OpenAI, vLLM).
package chat

// RequestDTO matches the POST /chat/completions request schema.
type RequestDTO struct {
	Model       string       `json:"model"`
	Messages    []MessageDTO `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Stream      bool         `json:"stream"`
}

// MessageDTO is one chat turn.
type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseDTO matches the chat completion response schema. Only the fields
// the service reads are declared.
type ResponseDTO struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []ChoiceDTO `json:"choices"`
	Usage   *UsageDTO   `json:"usage,omitempty"`
}

// ChoiceDTO is one generated alternative.
type ChoiceDTO struct {
	Index        int        `json:"index"`
	Message      MessageDTO `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

// UsageDTO reports token accounting for the call.
type UsageDTO struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

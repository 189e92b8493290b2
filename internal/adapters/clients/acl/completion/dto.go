// Package completion implements the Anti-Corruption Layer translators for
// legacy text completion endpoints (POST /completions).
package completion

// RequestDTO matches the text completion request schema.
type RequestDTO struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

// ResponseDTO matches the text completion response schema.
type ResponseDTO struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []ChoiceDTO `json:"choices"`
	Usage   *UsageDTO   `json:"usage,omitempty"`
}

// ChoiceDTO is one generated alternative.
type ChoiceDTO struct {
	Index        int    `json:"index"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

// UsageDTO reports token accounting for the call.
type UsageDTO struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Package generate implements the Anti-Corruption Layer translators for
// Ollama-style local model servers (POST /api/generate).
package generate

// RequestDTO matches the /api/generate request schema with streaming off.
type RequestDTO struct {
	Model   string     `json:"model"`
	Prompt  string     `json:"prompt"`
	Stream  bool       `json:"stream"`
	Options OptionsDTO `json:"options"`
}

// OptionsDTO carries sampling parameters. num_predict is Ollama's name for
// the output token limit.
type OptionsDTO struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ResponseDTO is the decoded body. It is kept as a generic mapping because
// servers add fields freely; the reply text lives under "response".
type ResponseDTO map[string]any

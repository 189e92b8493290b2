// Package catalog implements the Anti-Corruption Layer translators for
// provider model listings: the OpenAI-compatible GET /models list and the
// Ollama-style GET /api/tags list.
package catalog

// ListDTO matches the OpenAI-compatible /models response.
type ListDTO struct {
	Object string     `json:"object"`
	Data   []ModelDTO `json:"data"`
}

// ModelDTO is one entry of ListDTO.
type ModelDTO struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// TagsDTO matches the /api/tags response of local model servers.
type TagsDTO struct {
	Models []TagDTO `json:"models"`
}

// TagDTO is one locally pulled model.
type TagDTO struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	ModifiedAt string `json:"modified_at"`
	Size       int64  `json:"size"`
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// ModelClient defines the client port for the hosted language model.
// Implemented by the LLM anti-corruption layer; called by the agents.
//
// Invoke sends a fully rendered prompt and returns the provider's result in
// whatever shape the configured API style produces (a chat message, a
// completion choice map, or a decoded generate body). Callers turn it into
// text with the agent normalizer rather than asserting a concrete type.
//
// Provider failures are returned as errors wrapping domain sentinels
// (domain.ErrUnavailable, domain.ErrForbidden, ...).
type ModelClient interface {
	Invoke(ctx context.Context, prompt string) (any, error)
}

// ModelCatalog lists the models the configured provider can serve, sorted
// by ID. Implemented by the same adapter as ModelClient.
type ModelCatalog interface {
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
}

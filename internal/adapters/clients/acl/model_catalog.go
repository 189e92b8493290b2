package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/clients/acl/catalog"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/config"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

// Compile-time interface check.
var _ ports.ModelCatalog = (*ModelClient)(nil)

// ListModels queries the provider's model list: GET /models for the chat and
// completion styles, GET /api/tags for the generate style.
func (c *ModelClient) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	if c.apiStyle == config.APIStyleGenerate {
		var dto catalog.TagsDTO
		if err := c.req.Do(ctx, http.MethodGet, catalog.TagsPath, http.StatusOK, nil, &dto); err != nil {
			return nil, err
		}
		return catalog.FromTags(&dto), nil
	}

	var dto catalog.ListDTO
	if err := c.req.Do(ctx, http.MethodGet, catalog.ModelsPath, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return catalog.FromList(&dto), nil
}

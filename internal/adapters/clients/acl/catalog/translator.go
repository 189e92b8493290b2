package catalog

import (
	"cmp"
	"slices"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// Paths relative to the provider base URL.
const (
	ModelsPath = "/models"
	TagsPath   = "/api/tags"
)

// FromList translates an OpenAI-compatible model list, sorted by ID.
// Entries without an ID are dropped.
func FromList(dto *ListDTO) []domain.ModelInfo {
	out := make([]domain.ModelInfo, 0, len(dto.Data))
	for _, m := range dto.Data {
		if m.ID == "" {
			continue
		}
		out = append(out, domain.ModelInfo{ID: m.ID, OwnedBy: m.OwnedBy})
	}
	return sorted(out)
}

// FromTags translates a local server's tag list, sorted by ID. The tag name
// is the ID; older servers omit "model".
func FromTags(dto *TagsDTO) []domain.ModelInfo {
	out := make([]domain.ModelInfo, 0, len(dto.Models))
	for _, m := range dto.Models {
		id := cmp.Or(m.Name, m.Model)
		if id == "" {
			continue
		}
		out = append(out, domain.ModelInfo{ID: id, SizeBytes: m.Size})
	}
	return sorted(out)
}

func sorted(models []domain.ModelInfo) []domain.ModelInfo {
	slices.SortFunc(models, func(a, b domain.ModelInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return models
}

package domain

// ModelInfo describes one model the configured provider can serve.
type ModelInfo struct {
	// ID is the name passed as llm.model.
	ID string

	// OwnedBy is the publishing organization, when the provider reports it.
	OwnedBy string

	// SizeBytes is the on-disk size reported by local servers; zero otherwise.
	SizeBytes int64
}

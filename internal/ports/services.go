package ports

import (
	"context"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
)

// DocumentationService defines the service port for clinical documentation.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and CLI commands).
//
// Every method returns a non-empty string. Model failures are reported in
// the returned text with the stage's error prefix, never as an error value.
type DocumentationService interface {
	// Summarize produces a pre-visit summary from a raw patient record.
	Summarize(ctx context.Context, patientRecord string) string

	// AnalyzeConversation reviews a clinician-patient transcript from the
	// perspective of the given specialty.
	AnalyzeConversation(ctx context.Context, transcript string, specialty clinical.Specialty) string

	// GenerateNote writes a SOAP note from structured clinical data.
	GenerateNote(ctx context.Context, structuredData string) string

	// GenerateCodes suggests ICD-11, CPT and E/M codes from structured data.
	GenerateCodes(ctx context.Context, structuredData string) string

	// RunPipeline chains preparation, dialogue, then note and coding.
	// Returns domain.ErrValidation only when the input itself is invalid.
	RunPipeline(ctx context.Context, in clinical.PipelineInput) (clinical.PipelineResult, error)
}

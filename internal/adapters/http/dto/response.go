// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Message string `json:"message"`
}

// SummaryResponse is the body returned by POST /generate-summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// AnalysisResponse is the body returned by POST /analyze-conversation.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// SOAPNoteResponse is the body returned by POST /generate-note.
type SOAPNoteResponse struct {
	SOAPNote string `json:"soap_note"`
}

// CodesResponse is the body returned by POST /generate-codes.
type CodesResponse struct {
	Codes string `json:"codes"`
}

// PipelineResponse is the body returned by POST /run-pipeline.
type PipelineResponse struct {
	Summary  string `json:"summary"`
	Analysis string `json:"analysis"`
	SOAPNote string `json:"soap_note"`
	Codes    string `json:"codes"`
}

// ToPipelineResponse converts a pipeline result to an HTTP response DTO.
func ToPipelineResponse(res clinical.PipelineResult) PipelineResponse {
	return PipelineResponse{
		Summary:  res.Summary,
		Analysis: res.Analysis,
		SOAPNote: res.SOAPNote,
		Codes:    res.Codes,
	}
}

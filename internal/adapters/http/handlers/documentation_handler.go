package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

// statusMessage is the body of GET /.
const statusMessage = "Agentic AI Clinical Documentation API is running"

// DocumentationHandler serves the agent endpoints. Request-shape problems are
// 400 problem responses; model failures are not HTTP errors and arrive as
// 200 with the stage's error text in the normal field.
type DocumentationHandler struct {
	svc              ports.DocumentationService
	defaultSpecialty clinical.Specialty
}

// NewDocumentationHandler creates a DocumentationHandler. defaultSpecialty
// applies when a request names none; an empty or unknown value falls back
// to clinical.DefaultSpecialty.
func NewDocumentationHandler(svc ports.DocumentationService, defaultSpecialty clinical.Specialty) *DocumentationHandler {
	if !defaultSpecialty.IsValid() {
		defaultSpecialty = clinical.DefaultSpecialty
	}
	return &DocumentationHandler{svc: svc, defaultSpecialty: defaultSpecialty}
}

// Status handles GET /.
func (h *DocumentationHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.StatusResponse{Message: statusMessage})
}

// GenerateSummary handles POST /generate-summary.
func (h *DocumentationHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientInfoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	summary := h.svc.Summarize(r.Context(), req.Text())
	writeJSON(w, r, http.StatusOK, dto.SummaryResponse{Summary: summary})
}

// AnalyzeConversation handles POST /analyze-conversation.
func (h *DocumentationHandler) AnalyzeConversation(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeConversationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	analysis := h.svc.AnalyzeConversation(r.Context(), req.ConversationText, req.SpecialtyOr(h.defaultSpecialty))
	writeJSON(w, r, http.StatusOK, dto.AnalysisResponse{Analysis: analysis})
}

// GenerateNote handles POST /generate-note.
func (h *DocumentationHandler) GenerateNote(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientInfoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	note := h.svc.GenerateNote(r.Context(), req.Text())
	writeJSON(w, r, http.StatusOK, dto.SOAPNoteResponse{SOAPNote: note})
}

// GenerateCodes handles POST /generate-codes.
func (h *DocumentationHandler) GenerateCodes(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientInfoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	codes := h.svc.GenerateCodes(r.Context(), req.Text())
	writeJSON(w, r, http.StatusOK, dto.CodesResponse{Codes: codes})
}

// RunPipeline handles POST /run-pipeline.
func (h *DocumentationHandler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	var req dto.RunPipelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.RunPipeline(r.Context(), req.ToInput(h.defaultSpecialty))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPipelineResponse(res))
}

package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
)

const (
	fieldPatientInfo      = "patient_info"
	fieldConversationText = "conversation_text"
	fieldSpecialty        = "specialty"

	msgObjectOrString = "must be a JSON object or string"
)

// PatientInfoRequest is the body of the summary, note and codes endpoints.
// patient_info may be a JSON object, rendered as indented JSON text, or a
// string used verbatim.
type PatientInfoRequest struct {
	PatientInfo json.RawMessage `json:"patient_info"`
}

// Validate checks that patient_info is a non-empty object or string.
// Returns a *domain.ValidationError if any checks fail.
func (r *PatientInfoRequest) Validate() error {
	fields := make(map[string]string)

	if msg := checkPatientInfo(r.PatientInfo); msg != "" {
		fields[fieldPatientInfo] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Text returns patient_info as the text handed to an agent. Call Validate
// first; invalid input yields "".
func (r *PatientInfoRequest) Text() string {
	text, _ := patientInfoText(r.PatientInfo)
	return text
}

// AnalyzeConversationRequest is the body of POST /analyze-conversation.
type AnalyzeConversationRequest struct {
	ConversationText string `json:"conversation_text"`
	Specialty        string `json:"specialty,omitempty"`
}

// Validate checks that the transcript is present and any specialty is known.
// Returns a *domain.ValidationError if any checks fail.
func (r *AnalyzeConversationRequest) Validate() error {
	fields := make(map[string]string)

	if clinical.IsBlank(r.ConversationText) {
		fields[fieldConversationText] = domain.MsgRequired
	}
	if msg := checkSpecialty(r.Specialty); msg != "" {
		fields[fieldSpecialty] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SpecialtyOr returns the requested specialty, or fallback when none was
// given.
func (r *AnalyzeConversationRequest) SpecialtyOr(fallback clinical.Specialty) clinical.Specialty {
	return specialtyOr(r.Specialty, fallback)
}

// RunPipelineRequest is the body of POST /run-pipeline.
type RunPipelineRequest struct {
	PatientInfo      json.RawMessage `json:"patient_info"`
	ConversationText string          `json:"conversation_text,omitempty"`
	Specialty        string          `json:"specialty,omitempty"`
}

// Validate checks the record and any specialty. The transcript is optional.
// Returns a *domain.ValidationError if any checks fail.
func (r *RunPipelineRequest) Validate() error {
	fields := make(map[string]string)

	if msg := checkPatientInfo(r.PatientInfo); msg != "" {
		fields[fieldPatientInfo] = msg
	}
	if msg := checkSpecialty(r.Specialty); msg != "" {
		fields[fieldSpecialty] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput maps the request onto a pipeline input, using fallback when no
// specialty was given.
func (r *RunPipelineRequest) ToInput(fallback clinical.Specialty) clinical.PipelineInput {
	record, _ := patientInfoText(r.PatientInfo)
	return clinical.PipelineInput{
		PatientRecord: record,
		Transcript:    r.ConversationText,
		Specialty:     specialtyOr(r.Specialty, fallback),
	}
}

// patientInfoText renders raw patient_info. Objects and arrays become
// two-space indented JSON; strings are unquoted. ok is false for null,
// missing, or scalar values.
func patientInfoText(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
			return "", false
		}
		return buf.String(), true
	default:
		return "", false
	}
}

func checkPatientInfo(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.MsgRequired
	}

	text, ok := patientInfoText(trimmed)
	switch {
	case !ok:
		return msgObjectOrString
	case clinical.IsBlank(text), text == "{}", text == "[]":
		return domain.MsgRequired
	default:
		return ""
	}
}

func checkSpecialty(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if !clinical.ParseSpecialty(raw).IsValid() {
		return fmt.Sprintf("invalid: %q", raw)
	}
	return ""
}

func specialtyOr(raw string, fallback clinical.Specialty) clinical.Specialty {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	return clinical.ParseSpecialty(raw)
}

package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func decodePatientInfo(t *testing.T, body string) dto.PatientInfoRequest {
	t.Helper()

	var req dto.PatientInfoRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("json.Unmarshal(%s) error = %v", body, err)
	}
	return req
}

func TestPatientInfoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "object passes", body: `{"patient_info": {"name": "John Doe", "age": 45}}`},
		{name: "string passes", body: `{"patient_info": "45M, type 2 diabetes, A1C 8.1"}`},
		{name: "missing fails", body: `{}`, wantErr: true},
		{name: "null fails", body: `{"patient_info": null}`, wantErr: true},
		{name: "blank string fails", body: `{"patient_info": "   "}`, wantErr: true},
		{name: "empty object fails", body: `{"patient_info": {}}`, wantErr: true},
		{name: "number fails", body: `{"patient_info": 42}`, wantErr: true},
		{name: "bool fails", body: `{"patient_info": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := decodePatientInfo(t, tt.body)
			err := req.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "patient_info")
		})
	}
}

func TestPatientInfoRequest_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "object is indented JSON",
			body: `{"patient_info": {"name":"John Doe","conditions":["hypertension"]}}`,
			want: "{\n  \"name\": \"John Doe\",\n  \"conditions\": [\n    \"hypertension\"\n  ]\n}",
		},
		{
			name: "string is verbatim",
			body: `{"patient_info": "BP 150/95\nOn lisinopril"}`,
			want: "BP 150/95\nOn lisinopril",
		},
		{
			name: "number renders empty",
			body: `{"patient_info": 7}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := decodePatientInfo(t, tt.body)
			if got := req.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzeConversationRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.AnalyzeConversationRequest
		wantField string
	}{
		{
			name: "transcript only passes",
			req:  dto.AnalyzeConversationRequest{ConversationText: "Dr: Any pain?\nPt: No."},
		},
		{
			name: "specialty is case-insensitive",
			req:  dto.AnalyzeConversationRequest{ConversationText: "Dr: Any pain?", Specialty: " Cardiology "},
		},
		{
			name:      "blank transcript fails",
			req:       dto.AnalyzeConversationRequest{ConversationText: "\n\t"},
			wantField: "conversation_text",
		},
		{
			name:      "unknown specialty fails",
			req:       dto.AnalyzeConversationRequest{ConversationText: "Dr: Any pain?", Specialty: "oncology"},
			wantField: "specialty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestAnalyzeConversationRequest_SpecialtyOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		specialty string
		want      clinical.Specialty
	}{
		{specialty: "", want: clinical.SpecialtyPediatrics},
		{specialty: "  ", want: clinical.SpecialtyPediatrics},
		{specialty: "Neurology", want: clinical.SpecialtyNeurology},
	}

	for _, tt := range tests {
		req := dto.AnalyzeConversationRequest{Specialty: tt.specialty}
		if got := req.SpecialtyOr(clinical.SpecialtyPediatrics); got != tt.want {
			t.Errorf("SpecialtyOr(%q) = %q, want %q", tt.specialty, got, tt.want)
		}
	}
}

func TestRunPipelineRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "record only passes", body: `{"patient_info": {"name": "Jane"}}`},
		{name: "full request passes", body: `{"patient_info": "record", "conversation_text": "Dr: Hi", "specialty": "psychiatry"}`},
		{name: "missing record fails", body: `{"conversation_text": "Dr: Hi"}`, wantFields: []string{"patient_info"}},
		{name: "every problem reported", body: `{"patient_info": 1, "specialty": "oncology"}`, wantFields: []string{"patient_info", "specialty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.RunPipelineRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}

			err := req.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			for _, f := range tt.wantFields {
				requireValidationField(t, err, f)
			}
		})
	}
}

func TestRunPipelineRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := dto.RunPipelineRequest{
		PatientInfo:      json.RawMessage(`{"age": 61}`),
		ConversationText: "Dr: Any chest pain?",
	}

	got := req.ToInput(clinical.SpecialtyCardiology)

	want := clinical.PipelineInput{
		PatientRecord: "{\n  \"age\": 61\n}",
		Transcript:    "Dr: Any chest pain?",
		Specialty:     clinical.SpecialtyCardiology,
	}
	if got != want {
		t.Errorf("ToInput() = %+v, want %+v", got, want)
	}
}

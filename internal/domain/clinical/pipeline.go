// Package clinical holds the documentation pipeline's domain types. Clinical
// content is carried as opaque text; the only rule enforced on it is that it
// is non-empty.
package clinical

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// PipelineInput is everything one end-to-end documentation run needs.
type PipelineInput struct {
	// PatientRecord is the raw record text handed to the preparation stage.
	PatientRecord string

	// Transcript is the clinician-patient conversation. When empty the
	// dialogue stage analyzes the preparation summary instead.
	Transcript string

	Specialty Specialty
}

// Validate checks that a record is present and the specialty is known.
// An empty Specialty is accepted and treated as DefaultSpecialty.
func (in *PipelineInput) Validate() error {
	fields := make(map[string]string)

	if IsBlank(in.PatientRecord) {
		fields["patient_info"] = domain.MsgRequired
	}
	if in.Specialty != "" && !in.Specialty.IsValid() {
		fields["specialty"] = fmt.Sprintf("invalid: %q", in.Specialty)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// EffectiveSpecialty returns the specialty, falling back to DefaultSpecialty.
func (in *PipelineInput) EffectiveSpecialty() Specialty {
	if in.Specialty == "" {
		return DefaultSpecialty
	}
	return in.Specialty
}

// PipelineResult carries each stage's output. A field holds either model
// text or that stage's error string; it is never empty after a run.
type PipelineResult struct {
	Summary  string
	Analysis string
	SOAPNote string
	Codes    string
}

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

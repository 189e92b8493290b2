package clinical

import "strings"

// Specialty is the clinical specialty whose perspective the dialogue agent
// takes when analyzing a transcript.
type Specialty string

const (
	SpecialtyGeneral     Specialty = "general"
	SpecialtyCardiology  Specialty = "cardiology"
	SpecialtyNeurology   Specialty = "neurology"
	SpecialtyPediatrics  Specialty = "pediatrics"
	SpecialtyOrthopedics Specialty = "orthopedics"
	SpecialtyDermatology Specialty = "dermatology"
	SpecialtyPsychiatry  Specialty = "psychiatry"
)

// DefaultSpecialty is used when a caller does not name one.
const DefaultSpecialty = SpecialtyGeneral

// Specialties lists the supported specialties in display order.
var Specialties = []Specialty{
	SpecialtyGeneral,
	SpecialtyCardiology,
	SpecialtyNeurology,
	SpecialtyPediatrics,
	SpecialtyOrthopedics,
	SpecialtyDermatology,
	SpecialtyPsychiatry,
}

// ParseSpecialty normalizes case and surrounding whitespace. An empty string
// yields DefaultSpecialty. The result may still be invalid; check IsValid.
func ParseSpecialty(s string) Specialty {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSpecialty
	}
	return Specialty(s)
}

// IsValid returns true if the specialty is one of the defined constants.
func (s Specialty) IsValid() bool {
	switch s {
	case SpecialtyGeneral, SpecialtyCardiology, SpecialtyNeurology,
		SpecialtyPediatrics, SpecialtyOrthopedics, SpecialtyDermatology,
		SpecialtyPsychiatry:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Specialty) String() string {
	return string(s)
}

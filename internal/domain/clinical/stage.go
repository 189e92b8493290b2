package clinical

// Stage identifies one documentation agent in the pipeline.
type Stage string

const (
	StagePreparation Stage = "preparation"
	StageDialogue    Stage = "dialogue"
	StageNote        Stage = "note"
	StageCoding      Stage = "coding"
)

// Stages lists every stage in pipeline order. Note and coding share a
// position: both consume the dialogue output.
var Stages = []Stage{StagePreparation, StageDialogue, StageNote, StageCoding}

// IsValid returns true if the stage is one of the defined constants.
func (s Stage) IsValid() bool {
	switch s {
	case StagePreparation, StageDialogue, StageNote, StageCoding:
		return true
	default:
		return false
	}
}

// ErrorPrefix is prepended to any failure the stage reports in place of
// model output.
func (s Stage) ErrorPrefix() string {
	switch s {
	case StagePreparation:
		return "Error generating summary: "
	case StageDialogue:
		return "Error analyzing conversation: "
	case StageNote:
		return "Error generating SOAP note: "
	case StageCoding:
		return "Error generating codes: "
	default:
		return "Error: "
	}
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

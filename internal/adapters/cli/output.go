package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// JSON keys match the HTTP response fields.
const (
	fieldSummary  = "summary"
	fieldAnalysis = "analysis"
	fieldSOAPNote = "soap_note"
	fieldCodes    = "codes"
)

type pipelineOutput struct {
	Summary  string `json:"summary"`
	Analysis string `json:"analysis"`
	SOAPNote string `json:"soap_note"`
	Codes    string `json:"codes"`
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected text|json)", format)
	}
}

func printField(w io.Writer, format, field, value string) error {
	if format == formatJSON {
		return writeJSON(w, map[string]string{field: value})
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(value, "\n"))
	return err
}

func printPipeline(w io.Writer, format string, res clinical.PipelineResult) error {
	if format == formatJSON {
		return writeJSON(w, pipelineOutput{
			Summary:  res.Summary,
			Analysis: res.Analysis,
			SOAPNote: res.SOAPNote,
			Codes:    res.Codes,
		})
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Patient Summary", res.Summary},
		{"Conversation Analysis", res.Analysis},
		{"SOAP Note", res.SOAPNote},
		{"Billing Codes", res.Codes},
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s\n\n%s\n", s.title, strings.TrimRight(s.body, "\n"))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

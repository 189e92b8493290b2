package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

// maxInputBytes caps stdin and file input, matching the HTTP body limit.
const maxInputBytes = 1 << 20

var errEmptyInput = errors.New("input is empty")

// textCall is one single-stage service method, e.g.
// ports.DocumentationService.Summarize.
type textCall func(svc ports.DocumentationService, ctx context.Context, text string) string

func textCmd(opts *rootOptions, use, short, field string, call textCall) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			return opts.withSession(cmd.Context(), func(s *Session) error {
				out := call(s.Service, cmd.Context(), text)
				return printField(cmd.OutOrStdout(), opts.format, field, out)
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Read input from file instead of stdin")
	return c
}

func analyzeCmd(opts *rootOptions) *cobra.Command {
	var file string
	var specialty string

	c := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a clinician-patient conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if specialty != "" {
				if _, err := resolveSpecialty(specialty, ""); err != nil {
					return err
				}
			}

			transcript, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			return opts.withSession(cmd.Context(), func(s *Session) error {
				sp, err := resolveSpecialty(specialty, s.DefaultSpecialty)
				if err != nil {
					return err
				}
				out := s.Service.AnalyzeConversation(cmd.Context(), transcript, sp)
				return printField(cmd.OutOrStdout(), opts.format, fieldAnalysis, out)
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Read the transcript from file instead of stdin")
	c.Flags().StringVarP(&specialty, "specialty", "s", "", "Clinical specialty (defaults to the profile's default specialty)")
	return c
}

func pipelineCmd(opts *rootOptions) *cobra.Command {
	var record string
	var transcript string
	var specialty string

	c := &cobra.Command{
		Use:   "pipeline",
		Short: "Run summary, analysis, SOAP note and coding end to end",
		Long: "Run the full documentation pipeline. The patient record is read from --record or stdin. " +
			"Without --transcript the analysis stage works from the generated summary.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if specialty != "" {
				if _, err := resolveSpecialty(specialty, ""); err != nil {
					return err
				}
			}

			in := clinical.PipelineInput{}

			var err error
			if in.PatientRecord, err = readInput(cmd.InOrStdin(), record); err != nil {
				return fmt.Errorf("record: %w", err)
			}
			if transcript != "" {
				if in.Transcript, err = readInput(nil, transcript); err != nil {
					return fmt.Errorf("transcript: %w", err)
				}
			}

			return opts.withSession(cmd.Context(), func(s *Session) error {
				if in.Specialty, err = resolveSpecialty(specialty, s.DefaultSpecialty); err != nil {
					return err
				}

				res, err := s.Service.RunPipeline(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printPipeline(cmd.OutOrStdout(), opts.format, res)
			})
		},
	}

	c.Flags().StringVarP(&record, "record", "r", "", "Read the patient record from file instead of stdin")
	c.Flags().StringVarP(&transcript, "transcript", "t", "", "Conversation transcript file (optional)")
	c.Flags().StringVarP(&specialty, "specialty", "s", "", "Clinical specialty (defaults to the profile's default specialty)")
	return c
}

// readInput reads path, or stdin when path is empty or "-". Blank input is
// an error.
func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch path {
	case "", "-":
		if stdin == nil {
			return "", errEmptyInput
		}
		data, err = io.ReadAll(io.LimitReader(stdin, maxInputBytes+1))
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	default:
		f, oerr := os.Open(path)
		if oerr != nil {
			return "", fmt.Errorf("opening input: %w", oerr)
		}
		defer f.Close()

		data, err = io.ReadAll(io.LimitReader(f, maxInputBytes+1))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if len(data) > maxInputBytes {
		return "", fmt.Errorf("input exceeds %d bytes", maxInputBytes)
	}

	text := string(data)
	if clinical.IsBlank(text) {
		return "", errEmptyInput
	}
	return text, nil
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

type modelOutput struct {
	ID        string `json:"id"`
	OwnedBy   string `json:"owned_by,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
}

type modelsOutput struct {
	Configured string        `json:"configured"`
	Models     []modelOutput `json:"models"`
}

func modelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models the configured provider can serve",
		Long:  "List provider models. The configured llm.model is marked with '*'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd.Context(), func(s *Session) error {
				if s.Models == nil {
					return errors.New("model listing is not available for this profile")
				}

				models, err := s.Models.ListModels(cmd.Context())
				if err != nil {
					return fmt.Errorf("listing models: %w", err)
				}
				return printModels(cmd.OutOrStdout(), opts.format, s.Model, models)
			})
		},
	}
}

func printModels(w io.Writer, format, configured string, models []domain.ModelInfo) error {
	if format == formatJSON {
		out := modelsOutput{Configured: configured, Models: make([]modelOutput, 0, len(models))}
		for _, m := range models {
			out.Models = append(out.Models, modelOutput{ID: m.ID, OwnedBy: m.OwnedBy, SizeBytes: m.SizeBytes})
		}
		return writeJSON(w, out)
	}

	if len(models) == 0 {
		_, err := fmt.Fprintln(w, "no models available")
		return err
	}

	for _, m := range models {
		mark := " "
		if m.ID == configured {
			mark = "*"
		}

		line := mark + " " + m.ID
		switch {
		case m.OwnedBy != "":
			line += "  (" + m.OwnedBy + ")"
		case m.SizeBytes > 0:
			line += fmt.Sprintf("  (%.1f GB)", float64(m.SizeBytes)/1e9)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Package cli is the command-line shell over the documentation service. It
// drives the same agents as the HTTP API, reading clinical text from files or
// stdin and printing each agent's output as text or JSON.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

const (
	defaultProfile   = "local"
	defaultConfigDir = "configs"
)

// Session is a documentation service loaded for one command invocation.
type Session struct {
	Service ports.DocumentationService

	// DefaultSpecialty applies when --specialty is not given.
	DefaultSpecialty clinical.Specialty

	// Models lists what the provider serves; Model is the configured one.
	Models ports.ModelCatalog
	Model  string

	// Close flushes telemetry. May be nil.
	Close func(ctx context.Context) error
}

// Loader builds a Session from a config profile and directory.
type Loader func(ctx context.Context, profile, configDir string) (*Session, error)

type rootOptions struct {
	profile   string
	configDir string
	format    string
	load      Loader
}

// Execute runs the root command with ctx and returns the process exit code.
func Execute(ctx context.Context, load Loader) int {
	if err := NewRootCmd(load).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// NewRootCmd builds the clinicaldoc command tree.
func NewRootCmd(load Loader) *cobra.Command {
	opts := &rootOptions{load: load}

	cmd := &cobra.Command{
		Use:          "clinicaldoc",
		Short:        "Clinical documentation assistant",
		Long:         "Summarize patient records, analyze clinician-patient conversations, and draft SOAP notes and billing codes with an LLM.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return checkFormat(opts.format)
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", profile, "Config profile (defaults to $APP_PROFILE, then local)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", defaultConfigDir, "Directory holding base.yaml and profile YAML files")
	cmd.PersistentFlags().StringVar(&opts.format, "format", formatText, "Output format: text|json")

	cmd.AddCommand(
		textCmd(opts, "summary", "Summarize a patient record", fieldSummary, ports.DocumentationService.Summarize),
		analyzeCmd(opts),
		textCmd(opts, "note", "Generate a SOAP note from structured patient data", fieldSOAPNote, ports.DocumentationService.GenerateNote),
		textCmd(opts, "codes", "Suggest ICD-11, CPT and E/M codes from structured patient data", fieldCodes, ports.DocumentationService.GenerateCodes),
		pipelineCmd(opts),
		modelsCmd(opts),
	)

	return cmd
}

// withSession loads a Session, runs fn, and closes the session.
func (o *rootOptions) withSession(ctx context.Context, fn func(*Session) error) (err error) {
	if o.load == nil {
		return errors.New("no service loader configured")
	}

	s, err := o.load(ctx, o.profile, o.configDir)
	if err != nil {
		return fmt.Errorf("loading profile %q: %w", o.profile, err)
	}
	if s.Close != nil {
		defer func() {
			if cerr := s.Close(context.WithoutCancel(ctx)); cerr != nil {
				err = errors.Join(err, fmt.Errorf("closing session: %w", cerr))
			}
		}()
	}

	return fn(s)
}

// resolveSpecialty parses flag, falling back to the session default when
// the flag is empty.
func resolveSpecialty(flag string, fallback clinical.Specialty) (clinical.Specialty, error) {
	if flag == "" {
		if fallback.IsValid() {
			return fallback, nil
		}
		return clinical.DefaultSpecialty, nil
	}

	s := clinical.ParseSpecialty(flag)
	if !s.IsValid() {
		return "", fmt.Errorf("unsupported specialty %q (expected one of %v)", flag, clinical.Specialties)
	}
	return s, nil
}

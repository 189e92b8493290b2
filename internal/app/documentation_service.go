// Package app provides application services that orchestrate use cases by
// coordinating the documentation agents through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/app/agent"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/app/fanout"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/telemetry"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

// Compile-time check that DocumentationService implements ports.DocumentationService.
var _ ports.DocumentationService = (*DocumentationService)(nil)

// DocumentationService implements ports.DocumentationService with one agent
// per stage sharing a single model client. It sequences the pipeline and
// logs progress but inspects no clinical content: a stage's output, error
// text included, is handed to the next stage as-is.
type DocumentationService struct {
	preparation *agent.Agent
	dialogue    *agent.Agent
	note        *agent.Agent
	coding      *agent.Agent
	maxWorkers  int
	logger      *slog.Logger
}

// NewDocumentationService builds the four agents over model. maxWorkers
// bounds how many of the final stages (note, coding) run at once; 1 runs
// them one after the other. If metrics is nil, metric recording is skipped;
// a nil logger discards output.
func NewDocumentationService(model ports.ModelClient, metrics *telemetry.Metrics, maxWorkers int, logger *slog.Logger) (*DocumentationService, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	agents := make(map[clinical.Stage]*agent.Agent, len(clinical.Stages))
	for _, stage := range clinical.Stages {
		a, err := agent.New(stage, model, metrics)
		if err != nil {
			return nil, fmt.Errorf("creating %s agent: %w", stage, err)
		}
		agents[stage] = a
	}

	return &DocumentationService{
		preparation: agents[clinical.StagePreparation],
		dialogue:    agents[clinical.StageDialogue],
		note:        agents[clinical.StageNote],
		coding:      agents[clinical.StageCoding],
		maxWorkers:  max(maxWorkers, 1),
		logger:      logger,
	}, nil
}

// Summarize produces a pre-visit summary from a raw patient record.
func (s *DocumentationService) Summarize(ctx context.Context, patientRecord string) string {
	return s.preparation.Run(ctx, patientRecord)
}

// AnalyzeConversation reviews a transcript as the given specialty. An empty
// specialty means clinical.DefaultSpecialty; an unknown one is reported in
// the returned text without calling the model.
func (s *DocumentationService) AnalyzeConversation(ctx context.Context, transcript string, specialty clinical.Specialty) string {
	if specialty != "" && !specialty.IsValid() {
		return clinical.StageDialogue.ErrorPrefix() + fmt.Sprintf("unknown specialty %q", specialty)
	}
	return s.dialogue.Run(ctx, transcript, agent.WithSpecialty(specialty))
}

// GenerateNote writes a SOAP note from structured clinical data.
func (s *DocumentationService) GenerateNote(ctx context.Context, structuredData string) string {
	return s.note.Run(ctx, structuredData)
}

// GenerateCodes suggests billing codes from structured clinical data.
func (s *DocumentationService) GenerateCodes(ctx context.Context, structuredData string) string {
	return s.coding.Run(ctx, structuredData)
}

// RunPipeline chains the stages: preparation on the record, dialogue on the
// transcript (or on the summary when no transcript is given), then note and
// coding concurrently on the dialogue analysis.
func (s *DocumentationService) RunPipeline(ctx context.Context, in clinical.PipelineInput) (clinical.PipelineResult, error) {
	if err := in.Validate(); err != nil {
		return clinical.PipelineResult{}, err
	}

	start := time.Now()
	hasTranscript := !clinical.IsBlank(in.Transcript)
	s.logger.InfoContext(ctx, "running documentation pipeline",
		slog.String("specialty", in.EffectiveSpecialty().String()),
		slog.Bool("has_transcript", hasTranscript),
	)

	var res clinical.PipelineResult
	res.Summary = s.preparation.Run(ctx, in.PatientRecord)

	dialogueInput := in.Transcript
	if !hasTranscript {
		dialogueInput = res.Summary
	}
	res.Analysis = s.dialogue.Run(ctx, dialogueInput, agent.WithSpecialty(in.EffectiveSpecialty()))

	final := []*agent.Agent{s.note, s.coding}
	outputs := fanout.Run(ctx, s.maxWorkers, final, func(ctx context.Context, a *agent.Agent) (string, error) {
		return a.Run(ctx, res.Analysis), nil
	})
	res.SOAPNote = stageOutput(clinical.StageNote, outputs[0])
	res.Codes = stageOutput(clinical.StageCoding, outputs[1])

	s.logger.InfoContext(ctx, "documentation pipeline completed",
		slog.Duration("duration", time.Since(start)),
	)
	return res, nil
}

// stageOutput unwraps a fan-out result. Agents never return errors, so Err
// is only set when the run was canceled before it started or panicked.
func stageOutput(stage clinical.Stage, r fanout.Result[string]) string {
	if r.Err != nil {
		return stage.ErrorPrefix() + r.Err.Error()
	}
	return r.Value
}

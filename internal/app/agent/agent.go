// Package agent implements the documentation agents. An agent binds one
// prompt template to the shared model port, normalizes whatever shape the
// provider returns into text, and reports every failure as text carrying the
// stage's error prefix. Run never returns an error and never panics.
//
// Agents hold no per-call state and are safe for concurrent use.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/logging"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/telemetry"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/clinical-doc-assist/internal/app/agent"

// Failure reasons appended after the stage prefix.
var (
	errEmptyInput    = errors.New("input must not be empty")
	errEmptyResponse = errors.New("empty response from model")
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// Agent runs one documentation stage against the model.
type Agent struct {
	stage   clinical.Stage
	tmpl    *template.Template
	model   ports.ModelClient
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// RunOption customizes a single Run call.
type RunOption func(*promptData)

// WithSpecialty sets the specialty the dialogue prompt speaks as. Other
// stages ignore it. An empty specialty means clinical.DefaultSpecialty.
func WithSpecialty(s clinical.Specialty) RunOption {
	return func(d *promptData) {
		if s != "" {
			d.Specialty = s.String()
		}
	}
}

// New creates the agent for stage. If metrics is nil, metric recording is
// skipped.
func New(stage clinical.Stage, model ports.ModelClient, metrics *telemetry.Metrics) (*Agent, error) {
	tmpl, ok := prompts[stage]
	if !ok {
		return nil, fmt.Errorf("no prompt for stage %q", stage)
	}
	return &Agent{
		stage:   stage,
		tmpl:    tmpl,
		model:   model,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}, nil
}

// Stage returns the stage this agent runs.
func (a *Agent) Stage() clinical.Stage {
	return a.stage
}

// Run renders the prompt with input, calls the model and returns the
// normalized reply. On any failure it returns the stage's error prefix
// followed by the reason. The returned string is never empty.
func (a *Agent) Run(ctx context.Context, input string, opts ...RunOption) (out string) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "agent."+a.stage.String(),
		trace.WithAttributes(attribute.String("agent.stage", a.stage.String())),
	)
	defer span.End()

	logger := logging.FromContext(ctx).With(slog.String("stage", a.stage.String()))

	var failure error
	defer func() {
		if r := recover(); r != nil {
			failure = fmt.Errorf("panic: %v", r)
			out = a.stage.ErrorPrefix() + failure.Error()
		}
		a.finish(ctx, span, logger, start, len(input), out, failure)
	}()

	text, err := a.run(ctx, input, opts)
	if err != nil {
		failure = err
		return a.stage.ErrorPrefix() + err.Error()
	}
	return text
}

func (a *Agent) run(ctx context.Context, input string, opts []RunOption) (string, error) {
	if clinical.IsBlank(input) {
		return "", errEmptyInput
	}

	data := promptData{Input: input, Specialty: clinical.DefaultSpecialty.String()}
	for _, opt := range opts {
		opt(&data)
	}

	var prompt strings.Builder
	if err := a.tmpl.Execute(&prompt, data); err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	result, err := a.model.Invoke(ctx, prompt.String())
	if err != nil {
		return "", err
	}

	text := Normalize(result)
	if clinical.IsBlank(text) {
		return "", errEmptyResponse
	}
	return text, nil
}

// finish logs the outcome, records metrics and closes out the span. Only
// sizes are logged; the clinical text itself never is.
func (a *Agent) finish(ctx context.Context, span trace.Span, logger *slog.Logger, start time.Time, inLen int, out string, failure error) {
	elapsed := time.Since(start)

	result := resultSuccess
	if failure != nil {
		result = resultError
		span.RecordError(failure)
		span.SetStatus(codes.Error, failure.Error())
		logger.WarnContext(ctx, "agent run failed",
			slog.Duration("duration", elapsed),
			slog.Int("input_length", inLen),
			slog.Any("error", failure),
		)
	} else {
		logger.InfoContext(ctx, "agent run completed",
			slog.Duration("duration", elapsed),
			slog.Int("input_length", inLen),
			slog.Int("output_length", len(out)),
		)
	}
	span.SetAttributes(attribute.String("agent.result", result))

	if a.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrStage.String(a.stage.String()),
		telemetry.AttrResult.String(result),
	)
	a.metrics.AgentInvocationDuration.Record(ctx, elapsed.Seconds(), attrs)
	a.metrics.AgentInvocationTotal.Add(ctx, 1, attrs)
}

package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/clients/acl/chat"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/clients/acl/completion"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/clients/acl/generate"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/config"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/httpclient"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/telemetry"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

// ServiceName identifies the model provider in traces, metrics and the
// health registry.
const ServiceName = "llm-provider"

// Compile-time interface check.
var _ ports.ModelClient = (*ModelClient)(nil)

// ModelClient is the outbound adapter for the hosted language model. It
// implements [ports.ModelClient] for three provider API styles selected by
// config.LLMConfig.APIStyle:
//
//   - chat: POST /chat/completions, returns *[chat.Message]
//   - completion: POST /completions, returns map with "text" and "finish_reason"
//   - generate: POST /api/generate, returns the decoded body (reply under "response")
//
// HTTP errors are mapped to domain errors by [TranslateHTTPError]. The
// underlying [httpclient.Client] provides circuit breaking, rate limiting,
// retry with exponential backoff and OpenTelemetry tracing.
type ModelClient struct {
	req         *Requester
	apiStyle    string
	model       string
	temperature float64
	maxTokens   int
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// NewModelClient creates a ModelClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the provider API
// root (e.g. "https://api.groq.com/openai/v1"). If metrics is nil, token
// usage is not recorded.
func NewModelClient(client *httpclient.Client, cfg *config.LLMConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*ModelClient, error) {
	switch cfg.APIStyle {
	case config.APIStyleChat, config.APIStyleCompletion, config.APIStyleGenerate:
	default:
		return nil, fmt.Errorf("unsupported llm api style %q", cfg.APIStyle)
	}

	return &ModelClient{
		req:         NewRequester(client, cfg.APIKey, logger),
		apiStyle:    cfg.APIStyle,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

// Invoke sends the prompt using the configured API style and returns the
// provider's result without extracting text from it.
func (c *ModelClient) Invoke(ctx context.Context, prompt string) (any, error) {
	switch c.apiStyle {
	case config.APIStyleChat:
		return c.invokeChat(ctx, prompt)
	case config.APIStyleCompletion:
		return c.invokeCompletion(ctx, prompt)
	default:
		return c.invokeGenerate(ctx, prompt)
	}
}

func (c *ModelClient) invokeChat(ctx context.Context, prompt string) (any, error) {
	reqDTO := chat.ToRequest(c.model, prompt, c.temperature, c.maxTokens)

	var respDTO chat.ResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, chat.Path, http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	promptTokens, completionTokens := chat.Usage(&respDTO)
	c.recordUsage(ctx, promptTokens, completionTokens)

	msg, err := chat.ToMessage(&respDTO)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (c *ModelClient) invokeCompletion(ctx context.Context, prompt string) (any, error) {
	reqDTO := completion.ToRequest(c.model, prompt, c.temperature, c.maxTokens)

	var respDTO completion.ResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, completion.Path, http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	promptTokens, completionTokens := completion.Usage(&respDTO)
	c.recordUsage(ctx, promptTokens, completionTokens)

	result, err := completion.ToResult(&respDTO)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *ModelClient) invokeGenerate(ctx context.Context, prompt string) (any, error) {
	reqDTO := generate.ToRequest(c.model, prompt, c.temperature, c.maxTokens)

	var respDTO generate.ResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, generate.Path, http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	promptTokens, completionTokens := generate.Usage(respDTO)
	c.recordUsage(ctx, promptTokens, completionTokens)

	result, err := generate.ToResult(respDTO)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// recordUsage adds provider-reported token counts to llm.token.usage.
// Safe to call with nil metrics.
func (c *ModelClient) recordUsage(ctx context.Context, prompt, completion int) {
	if c.metrics == nil {
		return
	}
	if prompt > 0 {
		c.metrics.LLMTokenUsage.Add(ctx, int64(prompt), metric.WithAttributes(
			telemetry.AttrModel.String(c.model),
			telemetry.AttrTokenType.String("prompt"),
		))
	}
	if completion > 0 {
		c.metrics.LLMTokenUsage.Add(ctx, int64(completion), metric.WithAttributes(
			telemetry.AttrModel.String(c.model),
			telemetry.AttrTokenType.String("completion"),
		))
	}
}

package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.LLM.validate(),
		c.Agents.validate(),
		c.Pipeline.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (l *LLMConfig) validate() error {
	var errs []error

	switch l.APIStyle {
	case APIStyleChat, APIStyleCompletion:
		if l.APIKey == "" {
			errs = append(errs, fmt.Errorf("llm.api_key must not be empty for api_style %q", l.APIStyle))
		}
	case APIStyleGenerate:
		// Local servers need no credentials.
	default:
		errs = append(errs, fmt.Errorf("llm.api_style must be one of: chat, completion, generate; got %q", l.APIStyle))
	}

	if l.Model == "" {
		errs = append(errs, errors.New("llm.model must not be empty"))
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature must be between 0 and 2, got %g", l.Temperature))
	}
	if l.MaxTokens < 1 {
		errs = append(errs, fmt.Errorf("llm.max_tokens must be >= 1, got %d", l.MaxTokens))
	}

	return errors.Join(errs...)
}

// validSpecialties mirrors clinical.Specialty values. The config package
// sits below the domain and cannot import it.
var validSpecialties = map[string]bool{
	"general":     true,
	"cardiology":  true,
	"neurology":   true,
	"pediatrics":  true,
	"orthopedics": true,
	"dermatology": true,
	"psychiatry":  true,
}

func (a *AgentsConfig) validate() error {
	if !validSpecialties[a.DefaultSpecialty] {
		return fmt.Errorf("agents.default_specialty is not a known specialty: %q", a.DefaultSpecialty)
	}
	return nil
}

func (p *PipelineConfig) validate() error {
	if p.MaxWorkers < 1 {
		return fmt.Errorf("pipeline.max_workers must be >= 1, got %d", p.MaxWorkers)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}

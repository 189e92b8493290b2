package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }},
		{"log level", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"empty base url", func(c *config.Config) { c.Client.BaseURL = "" }},
		{"zero retry attempts", func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }},
		{"negative rate", func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }},
		{"rate without burst", func(c *config.Config) {
			c.Client.RateLimit.RequestsPerSecond = 1
			c.Client.RateLimit.BurstSize = 0
		}},
		{"unknown api style", func(c *config.Config) { c.LLM.APIStyle = "grpc" }},
		{"chat without key", func(c *config.Config) { c.LLM.APIKey = "" }},
		{"completion without key", func(c *config.Config) {
			c.LLM.APIStyle = config.APIStyleCompletion
			c.LLM.APIKey = ""
		}},
		{"empty model", func(c *config.Config) { c.LLM.Model = "" }},
		{"temperature too high", func(c *config.Config) { c.LLM.Temperature = 3 }},
		{"zero max tokens", func(c *config.Config) { c.LLM.MaxTokens = 0 }},
		{"unknown specialty", func(c *config.Config) { c.Agents.DefaultSpecialty = "astrology" }},
		{"zero pipeline workers", func(c *config.Config) { c.Pipeline.MaxWorkers = 0 }},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
			c.Telemetry.Endpoint = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_GenerateStyleNeedsNoKey(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.LLM.APIStyle = config.APIStyleGenerate
	cfg.LLM.APIKey = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for generate style without key: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "https://api.groq.com/openai/v1",
			Timeout: 60 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		LLM: config.LLMConfig{
			APIStyle:    config.APIStyleChat,
			Model:       "llama3-70b-8192",
			APIKey:      testAPIKey,
			Temperature: 0.2,
			MaxTokens:   2048,
		},
		Agents: config.AgentsConfig{
			DefaultSpecialty: "general",
		},
		Pipeline: config.PipelineConfig{
			MaxWorkers: 2,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

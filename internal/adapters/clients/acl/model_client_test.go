package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/clients/acl/chat"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/config"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/httpclient"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/telemetry"
)

const testAPIKey = "gsk-test-key"

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, ServiceName, nil, slog.New(slog.DiscardHandler))
}

func testLLMConfig(style string) *config.LLMConfig {
	return &config.LLMConfig{
		APIStyle:    style,
		Model:       "llama3-70b-8192",
		APIKey:      testAPIKey,
		Temperature: 0,
		MaxTokens:   2048,
	}
}

func newModelClient(t *testing.T, baseURL string, llm *config.LLMConfig, metrics *telemetry.Metrics) *ModelClient {
	t.Helper()

	c, err := NewModelClient(newTestClient(t, baseURL), llm, metrics, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewModelClient() error = %v", err)
	}
	return c
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestModelClient_Chat(t *testing.T) {
	t.Parallel()

	var gotBody chat.RequestDTO
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testAPIKey {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		writeJSON(t, w, map[string]any{
			"id":    "chatcmpl-1",
			"model": "llama3-70b-8192",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": "Pre-visit summary"},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 50, "completion_tokens": 20, "total_tokens": 70},
		})
	}))
	defer ts.Close()

	client := newModelClient(t, ts.URL, testLLMConfig(config.APIStyleChat), nil)

	got, err := client.Invoke(context.Background(), "Patient Information: 58M")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	msg, ok := got.(*chat.Message)
	if !ok {
		t.Fatalf("Invoke() result type = %T, want *chat.Message", got)
	}
	if msg.Content != "Pre-visit summary" {
		t.Errorf("Content = %q, want %q", msg.Content, "Pre-visit summary")
	}
	if gotBody.Model != "llama3-70b-8192" {
		t.Errorf("request model = %q, want %q", gotBody.Model, "llama3-70b-8192")
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Content != "Patient Information: 58M" {
		t.Errorf("request messages = %+v, want single prompt turn", gotBody.Messages)
	}
}

func TestModelClient_Completion(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, map[string]any{
			"id":      "cmpl-1",
			"choices": []map[string]any{{"index": 0, "text": "CPT 99214", "finish_reason": "stop"}},
		})
	}))
	defer ts.Close()

	client := newModelClient(t, ts.URL, testLLMConfig(config.APIStyleCompletion), nil)

	got, err := client.Invoke(context.Background(), "codes please")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	result, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Invoke() result type = %T, want map[string]any", got)
	}
	if result["text"] != "CPT 99214" {
		t.Errorf(`result["text"] = %v, want %q`, result["text"], "CPT 99214")
	}
}

func TestModelClient_Generate_NoAPIKey(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want none without api key", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if body["stream"] != false {
			t.Errorf("stream = %v, want false", body["stream"])
		}
		writeJSON(t, w, map[string]any{"model": "llama3", "response": "SOAP note", "done": true})
	}))
	defer ts.Close()

	llm := testLLMConfig(config.APIStyleGenerate)
	llm.APIKey = ""
	client := newModelClient(t, ts.URL, llm, nil)

	got, err := client.Invoke(context.Background(), "note please")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	result, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Invoke() result type = %T, want map[string]any", got)
	}
	if result["response"] != "SOAP note" {
		t.Errorf(`result["response"] = %v, want %q`, result["response"], "SOAP note")
	}
}

func TestModelClient_ErrorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "invalid key",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`,
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"Rate limit reached"}}`,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "provider outage",
			status:  http.StatusServiceUnavailable,
			body:    `{"error":{"message":"over capacity"}}`,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "unknown model",
			status:  http.StatusNotFound,
			body:    `{"error":{"message":"The model does not exist"}}`,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := newModelClient(t, ts.URL, testLLMConfig(config.APIStyleChat), nil)

			got, err := client.Invoke(context.Background(), "prompt")
			if got != nil {
				t.Errorf("Invoke() result = %v, want nil on error", got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Invoke() error = %v, want errors.Is %v", err, tt.wantErr)
			}
		})
	}
}

func TestModelClient_NoChoices(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"id": "chatcmpl-empty", "choices": []any{}})
	}))
	defer ts.Close()

	client := newModelClient(t, ts.URL, testLLMConfig(config.APIStyleChat), nil)

	_, err := client.Invoke(context.Background(), "prompt")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Invoke() error = %v, want ErrUnavailable", err)
	}
}

func TestModelClient_MalformedBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [`))
	}))
	defer ts.Close()

	client := newModelClient(t, ts.URL, testLLMConfig(config.APIStyleChat), nil)

	_, err := client.Invoke(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "decoding response") {
		t.Errorf("Invoke() error = %v, want decoding error", err)
	}
}

func TestModelClient_RecordsTokenUsage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"role": "assistant", "content": "ok"}}},
			"usage":   map[string]any{"prompt_tokens": 50, "completion_tokens": 20},
		})
	}))
	defer ts.Close()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	client := newModelClient(t, ts.URL, testLLMConfig(config.APIStyleChat), metrics)
	if _, err := client.Invoke(context.Background(), "prompt"); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "llm.token.usage" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("llm.token.usage data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrTokenType)
				got[v.AsString()] += dp.Value
			}
		}
	}

	if got["prompt"] != 50 || got["completion"] != 20 {
		t.Errorf("token usage = %v, want prompt=50 completion=20", got)
	}
}

func TestNewModelClient_UnsupportedStyle(t *testing.T) {
	t.Parallel()

	_, err := NewModelClient(newTestClient(t, "http://localhost"), testLLMConfig("streaming"), nil, slog.New(slog.DiscardHandler))
	if err == nil {
		t.Fatal("NewModelClient() error = nil, want unsupported style error")
	}
}

func TestModelClient_Health(t *testing.T) {
	t.Parallel()

	client := newModelClient(t, "http://localhost", testLLMConfig(config.APIStyleChat), nil)

	if got := client.Name(); got != "llm-provider" {
		t.Errorf("Name() = %q, want %q", got, "llm-provider")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil with closed breaker", err)
	}
}

func TestModelClient_HealthOpenBreaker(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	cfg := &config.ClientConfig{
		BaseURL: ts.URL,
		Timeout: time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   1,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
	hc := httpclient.New(cfg, ServiceName, nil, slog.New(slog.DiscardHandler))
	client, err := NewModelClient(hc, testLLMConfig(config.APIStyleChat), nil, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewModelClient() error = %v", err)
	}

	_, _ = client.Invoke(context.Background(), "prompt")

	err = client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want failing error", err)
	}
}

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/logging"
)

func redactedValues(h http.Header) map[string]string {
	out := map[string]string{}
	for _, a := range middleware.RedactHeaders(h) {
		out[a.Key] = a.Value.String()
	}
	return out
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
		{
			name: "ehr client request",
			headers: http.Header{
				"Authorization":    {"Bearer ehr-session-token"},
				"Content-Type":     {"application/json"},
				"X-Request-Id":     {"req-1"},
				"X-Correlation-Id": {"encounter-77"},
			},
			want: map[string]string{
				"Authorization":    "[REDACTED]",
				"Content-Type":     "application/json",
				"X-Request-Id":     "req-1",
				"X-Correlation-Id": "encounter-77",
			},
		},
		{
			name: "api key and cookie",
			headers: http.Header{
				"X-Api-Key": {"gsk-provider-key"},
				"Cookie":    {"session=abc", "theme=dark"},
			},
			want: map[string]string{
				"X-Api-Key": "[REDACTED]",
				"Cookie":    "[REDACTED]",
			},
		},
		{
			name:    "multi value joined",
			headers: http.Header{"Accept": {"application/json", "application/problem+json"}},
			want:    map[string]string{"Accept": "application/json,application/problem+json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := redactedValues(tt.headers)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d attrs %v, want %d", len(got), got, len(tt.want))
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestRedactHeaders_CoversSensitiveSet(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	for name := range logging.SensitiveHeaders {
		h.Set(name, "secret-"+name)
	}

	for k, v := range redactedValues(h) {
		if v != "[REDACTED]" {
			t.Errorf("%s = %q, want [REDACTED]", k, v)
		}
	}
}

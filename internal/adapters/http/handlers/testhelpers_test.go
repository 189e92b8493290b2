package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

const testTranscript = "Doctor: Any chest pain?\nPatient: Only when I climb stairs."

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblemField asserts rec holds a 400 problem response naming field.
func requireProblemField(t *testing.T, rec *httptest.ResponseRecorder, field string) {
	t.Helper()

	requireStatus(t, rec, 400)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var problem struct {
		Errors []struct {
			Location string `json:"location"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("failed to decode problem body: %v", err)
	}
	for _, e := range problem.Errors {
		if e.Location == "body."+field {
			return
		}
	}
	t.Errorf("problem errors = %+v, want location body.%s", problem.Errors, field)
}

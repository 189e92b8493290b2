// Package acl implements the Anti-Corruption Layer between the hosted
// language model APIs and the documentation agents. Wire formats for each
// provider API style live in subpackages (acl/chat, acl/completion,
// acl/generate); shared request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the union of the error shapes model providers return:
// RFC 7807 problem details from gateways, the OpenAI-compatible envelope
// {"error":{"message":...}} and Ollama's {"error":"..."}.
type errorBody struct {
	Detail string          `json:"detail"`
	Errors []errorDetail   `json:"errors"`
	Error  json.RawMessage `json:"error"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// providerError is the object form of the "error" member.
type providerError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
}

// TranslateHTTPError maps a provider error response to a domain error.
// The detail text comes from whichever known error shape the body matches,
// falling back to the HTTP status text. 429 is treated like a 5xx: the
// provider is temporarily unavailable to us.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail, param := body.describe()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		if param != "" {
			return &domain.ValidationError{Fields: map[string]string{param: detail}}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// describe returns the most specific message in the body and, for OpenAI
// style errors, the offending request parameter.
func (b errorBody) describe() (detail, param string) {
	if b.Detail != "" {
		return b.Detail, ""
	}
	if len(b.Error) == 0 {
		return "", ""
	}

	var msg string
	if err := json.Unmarshal(b.Error, &msg); err == nil {
		return msg, ""
	}

	var pe providerError
	if err := json.Unmarshal(b.Error, &pe); err == nil {
		return pe.Message, pe.Param
	}
	return "", ""
}

// parseErrorBody attempts to read and parse a JSON error body from the
// response. Returns an empty errorBody if the body is absent or not JSON.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") && !strings.HasPrefix(ct, "application/problem+json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return errorBody{}
	}
	return body
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

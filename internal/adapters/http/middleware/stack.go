// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack assembles the chain every documentation route runs behind:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/telemetry"
)

// Chain composes middlewares so that the first argument is outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the API pipeline. timeout bounds a whole request, so it must
// cover every model call a pipeline run makes. metrics may be nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	)
}

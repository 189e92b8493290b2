// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/dto"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown paths and
// methods get RFC 9457 problem responses.
func NewRouter(
	docHandler *handlers.DocumentationHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/", docHandler.Status)

	// Agent endpoints keep the paths existing clients already call.
	r.Post("/generate-summary", docHandler.GenerateSummary)
	r.Post("/analyze-conversation", docHandler.AnalyzeConversation)
	r.Post("/generate-note", docHandler.GenerateNote)
	r.Post("/generate-codes", docHandler.GenerateCodes)
	r.Post("/run-pipeline", docHandler.RunPipeline)

	return r
}

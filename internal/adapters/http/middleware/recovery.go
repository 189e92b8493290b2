package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into an RFC 9457
// 500. The log entry names the route and request ID so the failed agent call
// can be found; the panic value and stack stay out of the response. Nothing
// is written if the handler had already started its response.
//
// Recovery is outermost, so the request ID is read back from the response
// header RequestID set rather than from context.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				reqID := rw.Header().Get(headerRequestID)
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", reqID),
					slog.String("route", routePattern(r)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if rw.headerWritten {
					return
				}
				detail := "the request failed unexpectedly"
				if reqID != "" {
					detail += "; quote request ID " + reqID + " when reporting it"
				}
				dto.WriteProblem(rw, r, http.StatusInternalServerError, detail)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

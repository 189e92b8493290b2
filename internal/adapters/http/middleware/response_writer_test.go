package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_Records(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *responseWriter)
		wantStatus int
		wantBytes  int64
		wantHeader bool
	}{
		{
			name:       "untouched",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "implicit 200 on body",
			write:      func(rw *responseWriter) { _, _ = rw.Write([]byte(`{"summary":"ok"}`)) },
			wantStatus: http.StatusOK,
			wantBytes:  16,
			wantHeader: true,
		},
		{
			name: "problem then body",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusBadRequest)
				_, _ = rw.Write([]byte("abc"))
				_, _ = rw.Write([]byte("de"))
			},
			wantStatus: http.StatusBadRequest,
			wantBytes:  5,
			wantHeader: true,
		},
		{
			name: "second WriteHeader ignored",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusGatewayTimeout)
				rw.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusGatewayTimeout,
			wantHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantBytes {
				t.Errorf("written = %d, want %d", rw.written, tt.wantBytes)
			}
			if rw.headerWritten != tt.wantHeader {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantHeader)
			}
			if tt.wantHeader && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func status(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	w := httptest.NewRecorder()
	WithLogging(status(http.StatusSeeOther)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/no", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, buf.String(), "POST /no 303")
}

func TestWithSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	WithSecurityHeaders(status(http.StatusOK)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "img-src 'self' https://media1.giphy.com https://media4.giphy.com")
	assert.Contains(t, csp, "form-action 'self'")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func routedMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /yes", status(http.StatusInternalServerError))
	return mux
}

func TestWithTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	h := WithTracing(tp, routedMux())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/yes", nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "GET /yes", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Contains(t, span.Attributes(), attribute.Int("http.response.status_code", 500))
	assert.Contains(t, span.Attributes(), attribute.String("http.route", "GET /yes"))
}

func TestWithTracing_UnmatchedPathsShareName(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	h := WithTracing(tp, routedMux())
	for _, path := range []string{"/wp-admin", "/nope", "/a/b/c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	spans := sr.Ended()
	require.Len(t, spans, 3)
	for _, span := range spans {
		assert.Equal(t, "GET", span.Name())
		assert.Contains(t, span.Attributes(), attribute.Int("http.response.status_code", 404))
		assert.Equal(t, codes.Unset, span.Status().Code)
	}
}

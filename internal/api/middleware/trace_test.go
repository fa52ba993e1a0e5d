package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/solitaire/internal/api/shared"
	"github.com/phrazzld/solitaire/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	NewTraceMiddleware(log)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, seenTraceID, entry["trace_id"])
	}
	assert.Equal(t, "request started", entries[0]["msg"])
	assert.Equal(t, "inside handler", entries[1]["msg"])
}

func TestTraceMiddlewareGivesEachRequestItsOwnID(t *testing.T) {
	t.Parallel()

	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get("X-Trace-ID"), second.Header().Get("X-Trace-ID"))
}

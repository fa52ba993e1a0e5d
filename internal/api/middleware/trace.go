package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/solitaire/internal/api/shared"
	"github.com/phrazzld/solitaire/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context, together with a request logger tagged with that ID. Handlers and
// services further down the chain pick the logger up with
// logger.FromContext. A nil base logger falls back to slog.Default().
//
// This middleware should be applied early in the middleware chain.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set("X-Trace-ID", traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

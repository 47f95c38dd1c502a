package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/tracing"
)

// tracingMiddleware gives every request its own traceId so request logs and
// journal entries correlate.
func tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(tracing.InjectTraceID(r.Context())))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// instrumentationMiddleware logs every served request and records its
// duration against the matched route pattern. The pattern is read after the
// handler ran because chi resolves it during routing.
func instrumentationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		duration := time.Since(startTime)
		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = r.URL.Path
		}
		metrics.RecordHTTPRequestDuration(duration, r.Method, path, recorder.status)

		logEvent := log.Ctx(r.Context()).Info()
		if recorder.status >= http.StatusInternalServerError {
			logEvent = log.Ctx(r.Context()).Error()
		} else if recorder.status >= http.StatusBadRequest {
			logEvent = log.Ctx(r.Context()).Warn()
		}
		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", duration).
			Msg("Request completed")
	})
}

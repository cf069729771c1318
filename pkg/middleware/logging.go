package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atmin009/tutor-admin/pkg/logger"
)

type traceKey string

const requestIDKey traceKey = "requestID"

type Logging struct {
	l *zap.SugaredLogger
}

func NewLoggingMiddleware(l *zap.SugaredLogger) *Logging {
	return &Logging{
		l: l,
	}
}

// statusWriter remembers the status code for access logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// SetupTracing tags the request with an id, taking the upstream proxy's
// X-Request-Id when present.
func (lm *Logging) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == `` {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetupLogging puts a request-scoped logger into the context so every
// handler logs with the request id attached.
func (lm *Logging) SetupLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := lm.l
		if requestID := RequestID(r.Context()); requestID != `` {
			l = l.With("request_id", requestID)
		}
		next.ServeHTTP(w, r.WithContext(logger.NewContext(r.Context(), l)))
	})
}

func (lm *Logging) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Log(r.Context()).Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

// RequestID returns the id assigned by SetupTracing, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

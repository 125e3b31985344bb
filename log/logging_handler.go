package log

import (
	"net/http"
	"time"
)

type loggingHandler struct {
	inner  http.Handler
	logger Logger
}

// NewLoggingHandler wraps a handler so that every request is logged with its
// method, path, status code and duration.
func NewLoggingHandler(inner http.Handler, logger Logger) http.Handler {
	return &loggingHandler{inner: inner, logger: logger}
}

func (h *loggingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.inner.ServeHTTP(recorder, r)
	h.logger.Info("request served",
		"method", r.Method,
		"path", r.URL.Path,
		"status", recorder.status,
		"duration", time.Since(start))
}

// statusRecorder captures the status code written by the inner handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

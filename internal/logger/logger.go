package logger

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Log is the process-wide logger. Only Initialize replaces it.
// It is a no-op logger until then.
var Log *zap.Logger = zap.NewNop()

// Initialize sets up Log with the given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// RequestLogger logs every incoming HTTP request.
func RequestLogger(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rd := &responseData{status: http.StatusOK}
		lw := loggingResponseWriter{
			ResponseWriter: w,
			responseData:   rd,
		}

		h(&lw, r)

		Log.Info("got incoming HTTP request",
			zap.String("trace_id", uuid.NewString()),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rd.status),
			zap.Int("size", rd.size),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

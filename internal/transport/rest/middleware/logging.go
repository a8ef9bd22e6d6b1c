package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Hawkpraveen/Survey-BE/internal/log"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogger assigns every request an id, echoes it in X-Request-Id and
// logs method, path, status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Infof("%s %s %d %s rid=%s", r.Method, r.URL.Path, rec.status, time.Since(start), requestID)
	})
}

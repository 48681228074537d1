package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging логирует каждый запрос с кодом ответа и длительностью
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			requestID := GetRequestID(r.Context())
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
			default:
				log.Info("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
			}
		})
	}
}

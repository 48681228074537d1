package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

const unknownRoute = "unknown"

// MetricsMiddleware собирает количество и длительность HTTP запросов.
// В метку route пишется шаблон маршрута, а не сырой путь.
func MetricsMiddleware(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(rec.status), time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unknownRoute
	}

	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unknownRoute
	}
	return tpl
}

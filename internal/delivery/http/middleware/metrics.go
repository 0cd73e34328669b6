package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records served requests. Implemented by *metrics.Metrics.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics reports each request to obs, labelled by the matched route pattern.
// It must wrap the ServeMux directly: the mux records the pattern on the
// request it receives, so nothing in between may replace that request.
func Metrics(obs RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(r.Method, route, wrapped.status, time.Since(start))
	})
}
